//go:build wasm
// +build wasm

////////////////////////////////////////////////////////////////////////////////
// RetroPGF: retroactive public-goods funding rounds on the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"retro_pgf/contract"
	"retro_pgf/sdk"

	tinyjson "github.com/CosmWasm/tinyjson"
)

// main is left empty on purpose
func main() {

}

// reject surfaces a contract error to the chain with its stable symbol.
func reject(err *contract.ContractError) *string {
	sdk.Revert(err.Message, err.Symbol)
	return nil
}

// fail translates any operation error; everything the contract returns is a
// *ContractError, anything else is a bug worth aborting on.
func fail(err error) *string {
	if cerr, ok := err.(*contract.ContractError); ok {
		return reject(cerr)
	}
	sdk.Abort(err.Error())
	return nil
}

// encodeResult serializes a record for the read-only views.
func encodeResult(v tinyjson.Marshaler) *string {
	data, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to encode result")
	}
	return contract.Strptr(string(data))
}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit stores the caller as administrator.
// Must be called before any other function.
//
//go:wasmexport contract_init
func ContractInit(_ *string) *string {
	res, err := contract.Initialize()
	if err != nil {
		return fail(err)
	}
	return contract.Strptr(res)
}

// -----------------------------------------------------------------------------
// Rounds
// -----------------------------------------------------------------------------

// CreateRound opens a funding round. Admin only.
// Example payload: {"funding_amount":1000,"deadline":1767225600}
//
//go:wasmexport round_create
func CreateRound(payload *string) *string {
	args, err := contract.DecodeCreateRoundArgs(payload)
	if err != nil {
		sdk.Abort(err.Error())
	}
	id, err := contract.CreateRound(args)
	if err != nil {
		return fail(err)
	}
	return contract.Strptr(contract.UInt64ToString(id))
}

// GetRound returns the stored round as JSON.
// Example payload: {"id":1}
//
//go:wasmexport round_get
func GetRound(payload *string) *string {
	id, err := contract.DecodeID(payload, "round")
	if err != nil {
		sdk.Abort(err.Error())
	}
	round, err := contract.GetRound(id)
	if err != nil {
		return fail(err)
	}
	return encodeResult(round)
}

// CloseVoting freezes tallies and computes the allocation snapshot. Admin only.
// Example payload: {"round_id":1}
//
//go:wasmexport voting_close
func CloseVoting(payload *string) *string {
	args, err := contract.DecodeCloseVotingArgs(payload)
	if err != nil {
		sdk.Abort(err.Error())
	}
	if err := contract.CloseVoting(args); err != nil {
		return fail(err)
	}
	return contract.Strptr("voting closed")
}

// -----------------------------------------------------------------------------
// Submissions
// -----------------------------------------------------------------------------

// SubmitProject registers the caller's proposal in an active round.
// Example payload: {"round_id":1}
//
//go:wasmexport project_submit
func SubmitProject(payload *string) *string {
	args, err := contract.DecodeSubmitProjectArgs(payload)
	if err != nil {
		sdk.Abort(err.Error())
	}
	id, err := contract.SubmitProject(args)
	if err != nil {
		return fail(err)
	}
	return contract.Strptr(contract.UInt64ToString(id))
}

// GetSubmission returns the stored submission as JSON.
// Example payload: {"id":1}
//
//go:wasmexport submission_get
func GetSubmission(payload *string) *string {
	id, err := contract.DecodeID(payload, "submission")
	if err != nil {
		sdk.Abort(err.Error())
	}
	submission, err := contract.GetSubmission(id)
	if err != nil {
		return fail(err)
	}
	return encodeResult(submission)
}

// -----------------------------------------------------------------------------
// Voting
// -----------------------------------------------------------------------------

// AllocateVotes spends the caller's vote budget across submissions.
// Example payload: {"round_id":1,"allocations":[{"submission_id":1,"votes":12}]}
//
//go:wasmexport votes_allocate
func AllocateVotes(payload *string) *string {
	args, err := contract.DecodeAllocateVotesArgs(payload)
	if err != nil {
		sdk.Abort(err.Error())
	}
	if err := contract.AllocateVotes(args); err != nil {
		return fail(err)
	}
	return contract.Strptr("voted")
}

// GetAllocations returns the frozen snapshot of a closed round as JSON.
// Example payload: {"id":1}
//
//go:wasmexport allocations_get
func GetAllocations(payload *string) *string {
	id, err := contract.DecodeID(payload, "allocations")
	if err != nil {
		sdk.Abort(err.Error())
	}
	snap, err := contract.GetAllocations(id)
	if err != nil {
		return fail(err)
	}
	return encodeResult(snap)
}

// -----------------------------------------------------------------------------
// Funds
// -----------------------------------------------------------------------------

// Deposit pulls tokens into the contract treasury via a transfer.allow intent.
// Example payload: {"amount":1000,"asset":"hive"}
//
//go:wasmexport deposit
func Deposit(payload *string) *string {
	args, err := contract.DecodeDepositArgs(payload)
	if err != nil {
		sdk.Abort(err.Error())
	}
	if err := contract.Deposit(args); err != nil {
		return fail(err)
	}
	return contract.Strptr("deposited")
}

// DisburseFunds pays out a closed round exactly once. Admin only.
// Example payload: {"round_id":1,"asset":"hive"}
//
//go:wasmexport funds_disburse
func DisburseFunds(payload *string) *string {
	args, err := contract.DecodeDisburseFundsArgs(payload)
	if err != nil {
		sdk.Abort(err.Error())
	}
	if err := contract.DisburseFunds(args); err != nil {
		return fail(err)
	}
	return contract.Strptr("disbursed")
}

package contract

import (
	"errors"
	"fmt"

	tinyjson "github.com/CosmWasm/tinyjson"
)

//go:generate tinyjson -all payload.go

// Payload decoding for the wasm entrypoints. Decode failures are caller
// mistakes at the transport layer, so the wrappers abort on them instead of
// reverting with a contract error symbol.

var errEmptyPayload = errors.New("payload missing")

// DecodeCreateRoundArgs unpacks the JSON payload for round_create calls.
func DecodeCreateRoundArgs(payload *string) (*CreateRoundArgs, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return nil, errEmptyPayload
	}
	var args CreateRoundArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid round payload: %w", err)
	}
	if args.FundingAmount == 0 {
		return nil, errors.New("funding amount required")
	}
	if args.Deadline <= 0 {
		return nil, errors.New("deadline required")
	}
	return &args, nil
}

// DecodeSubmitProjectArgs unpacks the JSON payload for project_submit calls.
func DecodeSubmitProjectArgs(payload *string) (*SubmitProjectArgs, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return nil, errEmptyPayload
	}
	var args SubmitProjectArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid submit payload: %w", err)
	}
	return &args, nil
}

// DecodeAllocateVotesArgs unpacks the JSON payload for votes_allocate calls.
// Shape validation beyond JSON (empty list, duplicates, zero counts) stays in
// AllocateVotes so it reverts with invalid_allocations per the ABI.
func DecodeAllocateVotesArgs(payload *string) (*AllocateVotesArgs, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return nil, errEmptyPayload
	}
	var args AllocateVotesArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid vote payload: %w", err)
	}
	return &args, nil
}

// DecodeCloseVotingArgs unpacks the JSON payload for voting_close calls.
func DecodeCloseVotingArgs(payload *string) (*CloseVotingArgs, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return nil, errEmptyPayload
	}
	var args CloseVotingArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid close payload: %w", err)
	}
	return &args, nil
}

// DecodeDisburseFundsArgs unpacks the JSON payload for funds_disburse calls.
func DecodeDisburseFundsArgs(payload *string) (*DisburseFundsArgs, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return nil, errEmptyPayload
	}
	var args DisburseFundsArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid disburse payload: %w", err)
	}
	if !isValidAsset(args.Asset) {
		return nil, fmt.Errorf("unsupported asset: %s", args.Asset)
	}
	return &args, nil
}

// DecodeDepositArgs unpacks the JSON payload for deposit calls.
func DecodeDepositArgs(payload *string) (*DepositArgs, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return nil, errEmptyPayload
	}
	var args DepositArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid deposit payload: %w", err)
	}
	if args.Amount == 0 {
		return nil, errors.New("deposit amount required")
	}
	if !isValidAsset(args.Asset) {
		return nil, fmt.Errorf("unsupported asset: %s", args.Asset)
	}
	return &args, nil
}

// DecodeID unpacks the JSON payload shared by the read-only view calls.
func DecodeID(payload *string, field string) (uint64, error) {
	raw := unwrapPayload(payload)
	if raw == "" {
		return 0, errEmptyPayload
	}
	var args viewArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return 0, fmt.Errorf("invalid %s payload: %w", field, err)
	}
	return args.ID, nil
}

// viewArgs is the tiny shared shape for the *_get entrypoints.
type viewArgs struct {
	ID uint64 `json:"id"`
}

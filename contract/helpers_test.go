package contract_test

import (
	"testing"

	"retro_pgf/contract"
	"retro_pgf/sdk"

	"github.com/stretchr/testify/require"
)

const (
	adminAddress  = "hive:admin"
	voterAddress  = "hive:voter1"
	makerAddress  = "hive:maker1"
	maker2Address = "hive:maker2"
)

// setupContract resets the mock host and initializes the contract with adminAddress.
func setupContract(t *testing.T) *sdk.MockHost {
	t.Helper()
	host := sdk.ResetMock()
	host.Sender = sdk.Address(adminAddress)
	_, err := contract.Initialize()
	require.NoError(t, err)
	return host
}

// createRound opens a round as admin with the given funding and a deadline one hour out.
func createRound(t *testing.T, host *sdk.MockHost, funding uint64) uint64 {
	t.Helper()
	host.Sender = sdk.Address(adminAddress)
	id, err := contract.CreateRound(&contract.CreateRoundArgs{
		FundingAmount: funding,
		Deadline:      host.Timestamp + 3600,
	})
	require.NoError(t, err)
	return id
}

// submitProject registers a proposal from the given submitter.
func submitProject(t *testing.T, host *sdk.MockHost, roundID uint64, submitter string) uint64 {
	t.Helper()
	host.Sender = sdk.Address(submitter)
	id, err := contract.SubmitProject(&contract.SubmitProjectArgs{RoundID: roundID})
	require.NoError(t, err)
	return id
}

// allocate spends votes for one voter and expects success.
func allocate(t *testing.T, host *sdk.MockHost, roundID uint64, voter string, allocs ...contract.VoteAllocation) {
	t.Helper()
	host.Sender = sdk.Address(voter)
	err := contract.AllocateVotes(&contract.AllocateVotesArgs{RoundID: roundID, Allocations: allocs})
	require.NoError(t, err)
}

// closeVoting freezes the round as admin and expects success.
func closeVoting(t *testing.T, host *sdk.MockHost, roundID uint64) {
	t.Helper()
	host.Sender = sdk.Address(adminAddress)
	err := contract.CloseVoting(&contract.CloseVotingArgs{RoundID: roundID})
	require.NoError(t, err)
}

// fundContract credits the contract's own hive balance so disbursement can pass.
func fundContract(host *sdk.MockHost, amount int64) {
	host.SetBalance(sdk.Address(host.ContractID), sdk.AssetHive, amount)
}

// disburse runs funds_disburse as admin for hive.
func disburse(host *sdk.MockHost, roundID uint64) error {
	host.Sender = sdk.Address(adminAddress)
	return contract.DisburseFunds(&contract.DisburseFundsArgs{RoundID: roundID, Asset: "hive"})
}

package contract_test

import (
	"testing"

	"retro_pgf/contract"
	"retro_pgf/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedRound stands up a funded round with two submissions at 15/5 votes.
func closedRound(t *testing.T, host *sdk.MockHost) (roundID, subA, subB uint64) {
	t.Helper()
	roundID = createRound(t, host, 100)
	subA = submitProject(t, host, roundID, makerAddress)
	subB = submitProject(t, host, roundID, maker2Address)
	allocate(t, host, roundID, voterAddress,
		contract.VoteAllocation{SubmissionID: subA, Votes: 15},
		contract.VoteAllocation{SubmissionID: subB, Votes: 5},
	)
	closeVoting(t, host, roundID)
	return roundID, subA, subB
}

func TestDisburseFundsPaysSubmitters(t *testing.T) {
	host := setupContract(t)
	roundID, _, _ := closedRound(t, host)
	fundContract(host, 100)

	require.NoError(t, disburse(host, roundID))

	require.Len(t, host.Transfers, 2)
	assert.Equal(t, sdk.MockTransfer{To: sdk.Address(makerAddress), Amount: 75, Asset: sdk.AssetHive}, host.Transfers[0])
	assert.Equal(t, sdk.MockTransfer{To: sdk.Address(maker2Address), Amount: 25, Asset: sdk.AssetHive}, host.Transfers[1])

	round, err := contract.GetRound(roundID)
	require.NoError(t, err)
	assert.True(t, round.FundsDisbursed)
}

func TestDisburseFundsExactlyOnce(t *testing.T) {
	host := setupContract(t)
	roundID, _, _ := closedRound(t, host)
	fundContract(host, 100)

	require.NoError(t, disburse(host, roundID))
	transferred := len(host.Transfers)

	err := disburse(host, roundID)
	assert.ErrorIs(t, err, contract.ErrFundsAlreadyDisbursed)
	assert.Len(t, host.Transfers, transferred, "a rejected retry must not move tokens")
}

func TestDisburseFundsRequiresAdmin(t *testing.T) {
	host := setupContract(t)
	roundID, _, _ := closedRound(t, host)
	fundContract(host, 100)

	host.Sender = sdk.Address(voterAddress)
	err := contract.DisburseFunds(&contract.DisburseFundsArgs{RoundID: roundID, Asset: "hive"})
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

func TestDisburseFundsUnknownRound(t *testing.T) {
	host := setupContract(t)

	err := disburse(host, 11)
	assert.ErrorIs(t, err, contract.ErrRoundNotFound)
}

func TestDisburseFundsBeforeClose(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)
	fundContract(host, 100)

	err := disburse(host, roundID)
	assert.ErrorIs(t, err, contract.ErrVotingClosed)
}

func TestDisburseFundsInsufficientBalance(t *testing.T) {
	host := setupContract(t)
	roundID, _, _ := closedRound(t, host)
	fundContract(host, 99)

	err := disburse(host, roundID)
	assert.ErrorIs(t, err, contract.ErrInsufficientFunds)
	assert.Empty(t, host.Transfers)

	round, err := contract.GetRound(roundID)
	require.NoError(t, err)
	assert.False(t, round.FundsDisbursed)
}

func TestDisburseFundsTransferFailureAllowsRetry(t *testing.T) {
	host := setupContract(t)
	roundID, _, _ := closedRound(t, host)
	fundContract(host, 100)

	host.FailTransferTo[sdk.Address(maker2Address)] = true
	err := disburse(host, roundID)
	assert.ErrorIs(t, err, contract.ErrTransferFailed)

	round, err := contract.GetRound(roundID)
	require.NoError(t, err)
	assert.False(t, round.FundsDisbursed, "failed batch must keep the round retryable")

	// Once the recipient is payable again the retry completes and seals the round.
	delete(host.FailTransferTo, sdk.Address(maker2Address))
	fundContract(host, 100)
	require.NoError(t, disburse(host, roundID))

	round, err = contract.GetRound(roundID)
	require.NoError(t, err)
	assert.True(t, round.FundsDisbursed)
}

func TestDisburseFundsWithoutVotes(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)
	submitProject(t, host, roundID, makerAddress)
	closeVoting(t, host, roundID)
	fundContract(host, 100)

	require.NoError(t, disburse(host, roundID))
	assert.Empty(t, host.Transfers, "zero allocations owe no transfers")

	round, err := contract.GetRound(roundID)
	require.NoError(t, err)
	assert.True(t, round.FundsDisbursed)
}

func TestDepositDrawsIntoTreasury(t *testing.T) {
	host := setupContract(t)
	host.Sender = sdk.Address(adminAddress)
	host.SetBalance(sdk.Address(adminAddress), sdk.AssetHive, 1000)
	host.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "500"},
	}}

	require.NoError(t, contract.Deposit(&contract.DepositArgs{Amount: 500, Asset: "hive"}))
	assert.Equal(t, int64(500), host.BalanceOf(sdk.Address(host.ContractID), sdk.AssetHive))
	assert.Equal(t, int64(500), host.BalanceOf(sdk.Address(adminAddress), sdk.AssetHive))
}

func TestDepositRequiresIntent(t *testing.T) {
	host := setupContract(t)
	host.Sender = sdk.Address(adminAddress)

	err := contract.Deposit(&contract.DepositArgs{Amount: 500, Asset: "hive"})
	assert.ErrorIs(t, err, contract.ErrInsufficientFunds)

	host.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "100"},
	}}
	err = contract.Deposit(&contract.DepositArgs{Amount: 500, Asset: "hive"})
	assert.ErrorIs(t, err, contract.ErrInsufficientFunds)
}

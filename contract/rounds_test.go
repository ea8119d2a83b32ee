package contract_test

import (
	"testing"

	"retro_pgf/contract"
	"retro_pgf/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoundRequiresInit(t *testing.T) {
	sdk.ResetMock()

	_, err := contract.CreateRound(&contract.CreateRoundArgs{FundingAmount: 100, Deadline: 1})
	assert.ErrorIs(t, err, contract.ErrAdminNotSet)
}

func TestInitializeOnlyOnce(t *testing.T) {
	setupContract(t)

	_, err := contract.Initialize()
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

func TestCreateRoundRejectsNonAdmin(t *testing.T) {
	host := setupContract(t)

	host.Sender = sdk.Address(voterAddress)
	_, err := contract.CreateRound(&contract.CreateRoundArgs{FundingAmount: 100, Deadline: host.Timestamp + 3600})
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

func TestCreateRoundAssignsMonotonicIDs(t *testing.T) {
	host := setupContract(t)

	first := createRound(t, host, 100)
	second := createRound(t, host, 200)
	require.Equal(t, first+1, second)

	round, err := contract.GetRound(first)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), round.FundingAmount)
	assert.True(t, round.IsActive)
	assert.False(t, round.FundsDisbursed)
	assert.Empty(t, round.Submissions)
}

func TestCloseVotingUnknownRound(t *testing.T) {
	host := setupContract(t)

	host.Sender = sdk.Address(adminAddress)
	err := contract.CloseVoting(&contract.CloseVotingArgs{RoundID: 42})
	assert.ErrorIs(t, err, contract.ErrRoundNotFound)
}

func TestCloseVotingOnlyOnce(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)

	closeVoting(t, host, roundID)

	err := contract.CloseVoting(&contract.CloseVotingArgs{RoundID: roundID})
	assert.ErrorIs(t, err, contract.ErrRoundNotActive)
}

func TestCloseVotingRejectsNonAdmin(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)

	host.Sender = sdk.Address(voterAddress)
	err := contract.CloseVoting(&contract.CloseVotingArgs{RoundID: roundID})
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

func TestCloseVotingFreezesProportionalShares(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)
	subA := submitProject(t, host, roundID, makerAddress)
	subB := submitProject(t, host, roundID, maker2Address)

	// 30 and 10 votes across two voters, T=40.
	allocate(t, host, roundID, "hive:voter1", contract.VoteAllocation{SubmissionID: subA, Votes: 15}, contract.VoteAllocation{SubmissionID: subB, Votes: 5})
	allocate(t, host, roundID, "hive:voter2", contract.VoteAllocation{SubmissionID: subA, Votes: 15}, contract.VoteAllocation{SubmissionID: subB, Votes: 5})

	closeVoting(t, host, roundID)

	snap, err := contract.GetAllocations(roundID)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, uint64(40), snap.TotalVotes)
	assert.Equal(t, uint64(75), snap.Amount(subA))
	assert.Equal(t, uint64(25), snap.Amount(subB))
	assert.Equal(t, uint64(0), snap.Remainder)
}

func TestCloseVotingLeavesRemainderUndistributed(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)
	subA := submitProject(t, host, roundID, makerAddress)
	subB := submitProject(t, host, roundID, makerAddress)
	subC := submitProject(t, host, roundID, maker2Address)

	// 10, 10, 11 votes -> T=31, shares 32/32/35, one unit left over.
	allocate(t, host, roundID, "hive:voter1", contract.VoteAllocation{SubmissionID: subA, Votes: 10}, contract.VoteAllocation{SubmissionID: subB, Votes: 10})
	allocate(t, host, roundID, "hive:voter2", contract.VoteAllocation{SubmissionID: subC, Votes: 11})

	closeVoting(t, host, roundID)

	snap, err := contract.GetAllocations(roundID)
	require.NoError(t, err)
	assert.Equal(t, uint64(32), snap.Amount(subA))
	assert.Equal(t, uint64(32), snap.Amount(subB))
	assert.Equal(t, uint64(35), snap.Amount(subC))
	assert.Equal(t, uint64(1), snap.Remainder)
}

func TestCloseVotingWithoutVotes(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 500)
	subA := submitProject(t, host, roundID, makerAddress)

	closeVoting(t, host, roundID)

	snap, err := contract.GetAllocations(roundID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), snap.TotalVotes)
	assert.Equal(t, uint64(0), snap.Amount(subA))
	assert.Equal(t, uint64(500), snap.Remainder)
}

func TestGetAllocationsBeforeClose(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)

	_, err := contract.GetAllocations(roundID)
	assert.ErrorIs(t, err, contract.ErrVotingClosed)

	_, err = contract.GetAllocations(999)
	assert.ErrorIs(t, err, contract.ErrRoundNotFound)
}

func TestExpiredRoundStaysActiveUntilClosed(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 100)

	host.Timestamp += 7200

	round, err := contract.GetRound(roundID)
	require.NoError(t, err)
	assert.True(t, round.IsActive, "deadline expiry must not auto-close the round")

	closeVoting(t, host, roundID)
	round, err = contract.GetRound(roundID)
	require.NoError(t, err)
	assert.False(t, round.IsActive)
}

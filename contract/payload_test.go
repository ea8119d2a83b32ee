package contract_test

import (
	"testing"

	"retro_pgf/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestDecodeCreateRoundArgs(t *testing.T) {
	args, err := contract.DecodeCreateRoundArgs(strptr(`{"funding_amount":1000,"deadline":1767225600}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), args.FundingAmount)
	assert.Equal(t, int64(1767225600), args.Deadline)

	_, err = contract.DecodeCreateRoundArgs(nil)
	assert.Error(t, err)

	_, err = contract.DecodeCreateRoundArgs(strptr(`{"deadline":1767225600}`))
	assert.Error(t, err, "funding amount required")

	_, err = contract.DecodeCreateRoundArgs(strptr(`not json`))
	assert.Error(t, err)
}

func TestDecodeAllocateVotesArgs(t *testing.T) {
	args, err := contract.DecodeAllocateVotesArgs(strptr(`{"round_id":2,"allocations":[{"submission_id":5,"votes":12},{"submission_id":6,"votes":8}]}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), args.RoundID)
	require.Len(t, args.Allocations, 2)
	assert.Equal(t, contract.VoteAllocation{SubmissionID: 5, Votes: 12}, args.Allocations[0])
	assert.Equal(t, contract.VoteAllocation{SubmissionID: 6, Votes: 8}, args.Allocations[1])
}

func TestDecodeDisburseFundsArgsAsset(t *testing.T) {
	args, err := contract.DecodeDisburseFundsArgs(strptr(`{"round_id":1,"asset":"hive"}`))
	require.NoError(t, err)
	assert.Equal(t, "hive", args.Asset)

	_, err = contract.DecodeDisburseFundsArgs(strptr(`{"round_id":1,"asset":"doge"}`))
	assert.Error(t, err)
}

func TestDecodeDepositArgs(t *testing.T) {
	_, err := contract.DecodeDepositArgs(strptr(`{"amount":0,"asset":"hive"}`))
	assert.Error(t, err)

	_, err = contract.DecodeDepositArgs(strptr(`{"amount":10,"asset":"nope"}`))
	assert.Error(t, err)

	args, err := contract.DecodeDepositArgs(strptr(`{"amount":10,"asset":"hbd"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), args.Amount)
}

func TestRoundSurvivesStorageRoundtrip(t *testing.T) {
	host := setupContract(t)
	roundID := createRound(t, host, 123)
	subID := submitProject(t, host, roundID, makerAddress)

	round, err := contract.GetRound(roundID)
	require.NoError(t, err)
	assert.Equal(t, roundID, round.ID)
	assert.Equal(t, uint64(123), round.FundingAmount)
	assert.Equal(t, []uint64{subID}, round.Submissions)
	assert.True(t, round.IsActive)
}

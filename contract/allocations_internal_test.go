package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProportionalShare(t *testing.T) {
	assert.Equal(t, uint64(75), proportionalShare(100, 30, 40))
	assert.Equal(t, uint64(25), proportionalShare(100, 10, 40))
	assert.Equal(t, uint64(32), proportionalShare(100, 10, 31))
	assert.Equal(t, uint64(35), proportionalShare(100, 11, 31))
	assert.Equal(t, uint64(0), proportionalShare(100, 0, 31))
	assert.Equal(t, uint64(0), proportionalShare(100, 0, 0))
	assert.Equal(t, uint64(100), proportionalShare(100, 31, 31))
}

func TestProportionalShareWideIntermediate(t *testing.T) {
	// funding * votes overflows uint64 here; the 128-bit product must not.
	funding := uint64(math.MaxUint64)
	assert.Equal(t, funding/2, proportionalShare(funding, 10, 20))
	assert.Equal(t, funding, proportionalShare(funding, 20, 20))

	var total uint64
	shares := []uint64{proportionalShare(funding, 7, 20), proportionalShare(funding, 13, 20)}
	for _, s := range shares {
		total += s
	}
	assert.LessOrEqual(t, total, funding)
}

func TestVoterReceiptRoundtrip(t *testing.T) {
	rec := &voterReceipt{
		Spent: 20,
		Detail: []VoteAllocation{
			{SubmissionID: 3, Votes: 12},
			{SubmissionID: 9, Votes: 8},
		},
	}
	decoded := decodeVoterReceipt(encodeVoterReceipt(rec))
	assert.Equal(t, rec, decoded)
}

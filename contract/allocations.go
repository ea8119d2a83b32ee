package contract

import "math/bits"

// -----------------------------------------------------------------------------
// Allocation Engine
// -----------------------------------------------------------------------------

// proportionalShare computes floor(funding * votes / total) through a 128-bit
// intermediate so the product cannot overflow. votes <= total keeps the
// quotient within uint64, which is what Div64 requires.
func proportionalShare(funding, votes, total uint64) uint64 {
	if total == 0 || votes == 0 {
		return 0
	}
	hi, lo := bits.Mul64(funding, votes)
	share, _ := bits.Div64(hi, lo, total)
	return share
}

// computeAllocations builds the frozen snapshot for a round: one entry per
// submission in submission order, plus the vote total and the floor-division
// remainder. The remainder is not redistributed; it stays in the contract
// balance. With zero votes cast every share is zero and the full funding
// amount is the remainder.
func computeAllocations(round *Round) (*AllocationSnapshot, error) {
	var totalVotes uint64
	tallies := make([]uint64, len(round.Submissions))
	for i, submissionID := range round.Submissions {
		submission, err := loadSubmission(submissionID)
		if err != nil {
			return nil, err
		}
		tallies[i] = submission.TotalVotes
		totalVotes += submission.TotalVotes
	}

	var distributed uint64
	entries := make([]AllocationEntry, len(round.Submissions))
	for i, submissionID := range round.Submissions {
		amount := proportionalShare(round.FundingAmount, tallies[i], totalVotes)
		entries[i] = AllocationEntry{SubmissionID: submissionID, Amount: amount}
		distributed += amount
	}

	return &AllocationSnapshot{
		RoundID:    round.ID,
		TotalVotes: totalVotes,
		Remainder:  round.FundingAmount - distributed,
		Entries:    entries,
	}, nil
}

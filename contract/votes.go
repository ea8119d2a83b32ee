package contract

import "retro_pgf/sdk"

// -----------------------------------------------------------------------------
// Vote Ledger
// -----------------------------------------------------------------------------

// AllocateVotes spends the caller's per-round vote budget across submissions.
// Single-shot: one receipt per (round, voter), a second call fails with
// ErrAlreadyVoted no matter how much budget the first call left unused.
//
// Every check runs before the first write so a rejected call leaves no
// partial tally behind.
func AllocateVotes(args *AllocateVotesArgs) error {
	round, err := loadRound(args.RoundID)
	if err != nil {
		return err
	}
	if !round.IsActive || nowUnix() > round.Deadline {
		return ErrVotingClosed
	}

	if len(args.Allocations) == 0 {
		return ErrInvalidAllocations
	}
	seen := make(map[uint64]bool, len(args.Allocations))
	var spent uint64
	for _, alloc := range args.Allocations {
		if alloc.Votes == 0 || seen[alloc.SubmissionID] {
			return ErrInvalidAllocations
		}
		// per-entry bound first so the sum below cannot wrap
		if alloc.Votes > VoteCredits {
			return ErrExceededVoteLimit
		}
		seen[alloc.SubmissionID] = true
		spent += alloc.Votes
	}
	if spent > VoteCredits {
		return ErrExceededVoteLimit
	}

	voter := getSenderAddress()
	if loadVoterReceipt(round.ID, voter) != nil {
		return ErrAlreadyVoted
	}

	// Load every target up front; an unknown or out-of-round submission must
	// reject the whole call before any tally moves.
	submissions := make([]*Submission, len(args.Allocations))
	for i, alloc := range args.Allocations {
		submission, err := loadSubmission(alloc.SubmissionID)
		if err != nil {
			return err
		}
		if submission.RoundID != round.ID {
			return ErrInvalidAllocations
		}
		submissions[i] = submission
	}

	for i, alloc := range args.Allocations {
		submissions[i].TotalVotes += alloc.Votes
		saveSubmission(submissions[i])
	}
	saveVoterReceipt(round.ID, voter, &voterReceipt{Spent: spent, Detail: args.Allocations})

	emitVotesAllocated(round.ID, voter.String(), spent)
	return nil
}

// VoterSpent reports how many credits a voter burned in a round, zero when
// the voter has not allocated yet.
func VoterSpent(roundID uint64, voter string) uint64 {
	rec := loadVoterReceipt(roundID, sdk.Address(voter))
	if rec == nil {
		return 0
	}
	return rec.Spent
}

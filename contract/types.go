package contract

import "retro_pgf/sdk"

//go:generate tinyjson -all types.go

// Round is a time-boxed funding competition with a fixed token budget.
// FundingAmount is immutable after creation; Submissions only grows while the
// round is active; FundsDisbursed flips false->true exactly once.
type Round struct {
	ID             uint64   `json:"id"`
	FundingAmount  uint64   `json:"funding_amount"`
	Deadline       int64    `json:"deadline"`
	IsActive       bool     `json:"is_active"`
	Submissions    []uint64 `json:"submissions"`
	FundsDisbursed bool     `json:"funds_disbursed"`
}

// Submission is a proposal entered into a round. TotalVotes only increases
// during the active voting window and is frozen by voting_close.
type Submission struct {
	ID         uint64      `json:"id"`
	RoundID    uint64      `json:"round_id"`
	Submitter  sdk.Address `json:"submitter"`
	TotalVotes uint64      `json:"total_votes"`
}

// AllocationEntry is one submission's frozen funding share.
type AllocationEntry struct {
	SubmissionID uint64 `json:"submission_id"`
	Amount       uint64 `json:"amount"`
}

// AllocationSnapshot is the output of closing a round: per-submission funding
// shares ordered by submission id, plus the vote total and the floor-division
// remainder that stays in the contract balance. Written once, never mutated.
type AllocationSnapshot struct {
	RoundID    uint64            `json:"round_id"`
	TotalVotes uint64            `json:"total_votes"`
	Remainder  uint64            `json:"remainder"`
	Entries    []AllocationEntry `json:"entries"`
}

// Amount looks up the frozen share for a submission, zero when absent.
func (s *AllocationSnapshot) Amount(submissionID uint64) uint64 {
	for _, e := range s.Entries {
		if e.SubmissionID == submissionID {
			return e.Amount
		}
	}
	return 0
}

type CreateRoundArgs struct {
	FundingAmount uint64 `json:"funding_amount"`
	Deadline      int64  `json:"deadline"`
}

type SubmitProjectArgs struct {
	RoundID uint64 `json:"round_id"`
}

// VoteAllocation pairs a submission with the votes a voter spends on it.
type VoteAllocation struct {
	SubmissionID uint64 `json:"submission_id"`
	Votes        uint64 `json:"votes"`
}

type AllocateVotesArgs struct {
	RoundID     uint64           `json:"round_id"`
	Allocations []VoteAllocation `json:"allocations"`
}

type CloseVotingArgs struct {
	RoundID uint64 `json:"round_id"`
}

type DisburseFundsArgs struct {
	RoundID uint64 `json:"round_id"`
	Asset   string `json:"asset"`
}

type DepositArgs struct {
	Amount uint64 `json:"amount"`
	Asset  string `json:"asset"`
}

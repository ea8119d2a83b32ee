package contract

// -----------------------------------------------------------------------------
// Round Lifecycle
// -----------------------------------------------------------------------------

// CreateRound opens a new funding round with a fixed budget and deadline.
// Admin only. The deadline is stored as given; an already-expired deadline
// simply produces a round that rejects submissions and votes.
func CreateRound(args *CreateRoundArgs) (uint64, error) {
	if err := requireAdmin(getSenderAddress()); err != nil {
		return 0, err
	}

	id := nextID(RoundsCount)
	round := Round{
		ID:             id,
		FundingAmount:  args.FundingAmount,
		Deadline:       args.Deadline,
		IsActive:       true,
		Submissions:    []uint64{},
		FundsDisbursed: false,
	}
	saveRound(&round)

	emitRoundCreated(id, args.FundingAmount, args.Deadline)
	return id, nil
}

// CloseVoting deactivates the round and freezes the allocation snapshot.
// Admin only. This is the single synchronization point after which vote
// tallies never change; the snapshot is computed here exactly once.
//
// A round past its deadline still needs this explicit call: deadline expiry
// only blocks submissions and votes, it never transitions the round.
func CloseVoting(args *CloseVotingArgs) error {
	if err := requireAdmin(getSenderAddress()); err != nil {
		return err
	}
	round, err := loadRound(args.RoundID)
	if err != nil {
		return err
	}
	if !round.IsActive {
		return ErrRoundNotActive
	}

	snap, err := computeAllocations(round)
	if err != nil {
		return err
	}

	round.IsActive = false
	saveRound(round)
	saveAllocationSnapshot(snap)

	emitVotingClosed(round.ID, snap.TotalVotes, snap.Remainder)
	return nil
}

// GetRound returns the stored round record.
func GetRound(id uint64) (*Round, error) {
	return loadRound(id)
}

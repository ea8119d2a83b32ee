package contract

// -----------------------------------------------------------------------------
// Submission Registry
// -----------------------------------------------------------------------------

// SubmitProject registers the caller's proposal in an active round.
// Both gates apply independently: a closed round fails with ErrRoundNotActive
// even when the deadline is still ahead, and an expired-but-unclosed round
// fails with ErrSubmissionDeadlinePassed while still reporting active.
func SubmitProject(args *SubmitProjectArgs) (uint64, error) {
	round, err := loadRound(args.RoundID)
	if err != nil {
		return 0, err
	}
	if !round.IsActive {
		return 0, ErrRoundNotActive
	}
	if nowUnix() > round.Deadline {
		return 0, ErrSubmissionDeadlinePassed
	}

	id := nextID(SubmissionsCount)
	submission := Submission{
		ID:         id,
		RoundID:    round.ID,
		Submitter:  getSenderAddress(),
		TotalVotes: 0,
	}
	saveSubmission(&submission)

	round.Submissions = append(round.Submissions, id)
	saveRound(round)

	emitProjectSubmitted(id, round.ID, submission.Submitter.String())
	return id, nil
}

// GetSubmission returns the stored submission record.
func GetSubmission(id uint64) (*Submission, error) {
	return loadSubmission(id)
}

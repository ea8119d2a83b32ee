package contract

import "retro_pgf/sdk"

// -----------------------------------------------------------------------------
// Disbursement
// -----------------------------------------------------------------------------

// DisburseFunds pays out the frozen allocation snapshot exactly once.
// Admin only. The funds_disbursed flag is the sole exactly-once guard: it is
// checked first and set only after every transfer went through, so a failed
// batch can be retried. A batch where some transfers succeeded before a later
// one failed leaves those tokens with their recipients; the flag stays unset
// and the retry re-sends everything, so keep per-round recipients payable or
// drain the round manually before retrying.
func DisburseFunds(args *DisburseFundsArgs) error {
	if err := requireAdmin(getSenderAddress()); err != nil {
		return err
	}
	round, err := loadRound(args.RoundID)
	if err != nil {
		return err
	}
	if round.FundsDisbursed {
		return ErrFundsAlreadyDisbursed
	}

	snap := loadAllocationSnapshot(round.ID)
	if snap == nil {
		// No snapshot means voting_close has not run for this round.
		return ErrVotingClosed
	}

	asset := sdk.Asset(args.Asset)
	balance := sdk.GetBalance(getContractAddress(), asset)
	if balance < 0 || uint64(balance) < round.FundingAmount {
		return ErrInsufficientFunds
	}

	var paidOut uint64
	for _, entry := range snap.Entries {
		if entry.Amount == 0 {
			continue
		}
		submission, err := loadSubmission(entry.SubmissionID)
		if err != nil {
			return err
		}
		if err := sdk.HiveTransfer(submission.Submitter, int64(entry.Amount), asset); err != nil {
			return ErrTransferFailed
		}
		paidOut += entry.Amount
	}

	round.FundsDisbursed = true
	saveRound(round)

	emitFundsDisbursed(round.ID, paidOut, args.Asset)
	return nil
}

// GetAllocations returns the frozen snapshot for a closed round.
func GetAllocations(roundID uint64) (*AllocationSnapshot, error) {
	if _, err := loadRound(roundID); err != nil {
		return nil, err
	}
	snap := loadAllocationSnapshot(roundID)
	if snap == nil {
		return nil, ErrVotingClosed
	}
	return snap, nil
}

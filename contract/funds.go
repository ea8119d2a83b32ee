package contract

import "retro_pgf/sdk"

// -----------------------------------------------------------------------------
// Treasury Deposits
// -----------------------------------------------------------------------------

// Deposit pulls tokens from the caller into the contract account so a round's
// budget is actually payable at disbursement time. The caller must attach a
// transfer.allow intent covering the amount; the host enforces the draw
// against that intent.
func Deposit(args *DepositArgs) error {
	limit := getFirstTransferAllow(sdk.GetEnv().Intents, args.Asset)
	if limit == nil || *limit < args.Amount {
		return ErrInsufficientFunds
	}

	sdk.HiveDraw(int64(args.Amount), sdk.Asset(args.Asset))

	emitDeposit(getSenderAddress().String(), args.Amount, args.Asset)
	return nil
}

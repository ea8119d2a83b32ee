package contract

// -----------------------------------------------------------------------------
// Contract Errors
// -----------------------------------------------------------------------------

// ErrorCode numbers are part of the contract ABI and must stay stable.
type ErrorCode uint32

const (
	CodeUnauthorized ErrorCode = iota + 1
	CodeRoundNotFound
	CodeRoundNotActive
	CodeSubmissionNotFound
	CodeSubmissionDeadlinePassed
	CodeExceededVoteLimit
	CodeAlreadyVoted
	CodeVotingClosed
	CodeFundsAlreadyDisbursed
	CodeInvalidAllocations
	CodeTransferFailed
	CodeInsufficientFunds
	CodeAdminNotSet
)

// ContractError is the closed set of failures an operation can surface.
// Operations return these sentinels unchanged so callers can match with
// errors.Is; the wasm entrypoints revert with Symbol.
type ContractError struct {
	Code    ErrorCode
	Symbol  string
	Message string
}

// Error returns the human readable message.
func (e *ContractError) Error() string {
	return e.Message
}

var (
	ErrUnauthorized             = &ContractError{CodeUnauthorized, "unauthorized", "caller is not the configured admin"}
	ErrRoundNotFound            = &ContractError{CodeRoundNotFound, "round_not_found", "round does not exist"}
	ErrRoundNotActive           = &ContractError{CodeRoundNotActive, "round_not_active", "round is no longer active"}
	ErrSubmissionNotFound       = &ContractError{CodeSubmissionNotFound, "submission_not_found", "submission does not exist"}
	ErrSubmissionDeadlinePassed = &ContractError{CodeSubmissionDeadlinePassed, "submission_deadline_passed", "round deadline has passed"}
	ErrExceededVoteLimit        = &ContractError{CodeExceededVoteLimit, "exceeded_vote_limit", "allocation exceeds the per-round vote budget"}
	ErrAlreadyVoted             = &ContractError{CodeAlreadyVoted, "already_voted", "voter already allocated votes in this round"}
	ErrVotingClosed             = &ContractError{CodeVotingClosed, "voting_closed", "voting is not open for this round"}
	ErrFundsAlreadyDisbursed    = &ContractError{CodeFundsAlreadyDisbursed, "funds_already_disbursed", "round funds were already disbursed"}
	ErrInvalidAllocations       = &ContractError{CodeInvalidAllocations, "invalid_allocations", "vote allocation list is malformed"}
	ErrTransferFailed           = &ContractError{CodeTransferFailed, "transfer_failed", "token transfer failed"}
	ErrInsufficientFunds        = &ContractError{CodeInsufficientFunds, "insufficient_funds", "contract balance below round funding amount"}
	ErrAdminNotSet              = &ContractError{CodeAdminNotSet, "admin_not_set", "contract has not been initialized"}
)

package contract

import (
	"fmt"

	"retro_pgf/sdk"
)

// Events are fire-and-forget log lines for off-chain observers; nothing in
// the contract ever reads them back.

// emitInitEvent marks the one-time admin setup.
func emitInitEvent(adminAddress string) {
	sdk.Log(fmt.Sprintf(
		"init|by:%s",
		adminAddress,
	))
}

// emitRoundCreated gives explorers a neat ping without scanning full storage diffs.
func emitRoundCreated(roundId uint64, fundingAmount uint64, deadline int64) {
	sdk.Log(fmt.Sprintf(
		"rc|id:%d|amt:%d|dl:%d",
		roundId,
		fundingAmount,
		deadline,
	))
}

// emitProjectSubmitted keeps observers updated with a short ps line for every new proposal.
func emitProjectSubmitted(submissionId uint64, roundId uint64, submitterAddress string) {
	sdk.Log(fmt.Sprintf(
		"ps|id:%d|rnd:%d|by:%s",
		submissionId,
		roundId,
		submitterAddress,
	))
}

// emitVotesAllocated logs voter plus spent credits so budgets can be replayed from logs only.
func emitVotesAllocated(roundId uint64, voterAddress string, spent uint64) {
	sdk.Log(fmt.Sprintf(
		"va|rnd:%d|by:%s|spent:%d",
		roundId,
		voterAddress,
		spent,
	))
}

// emitVotingClosed carries the vote total and the undistributed remainder for auditors.
func emitVotingClosed(roundId uint64, totalVotes uint64, remainder uint64) {
	sdk.Log(fmt.Sprintf(
		"vc|id:%d|t:%d|rem:%d",
		roundId,
		totalVotes,
		remainder,
	))
}

// emitFundsDisbursed signals the terminal payout with the amount that actually moved.
func emitFundsDisbursed(roundId uint64, paidOut uint64, asset string) {
	sdk.Log(fmt.Sprintf(
		"fd|id:%d|amt:%d|as:%s",
		roundId,
		paidOut,
		asset,
	))
}

// emitDeposit tells indexing bots the treasury grew via one terse line.
func emitDeposit(fromAddress string, amount uint64, asset string) {
	sdk.Log(fmt.Sprintf(
		"df|by:%s|am:%d|as:%s",
		fromAddress,
		amount,
		asset,
	))
}

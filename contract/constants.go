package contract

import "retro_pgf/sdk"

// -----------------------------------------------------------------------------
// Voting Budget
// -----------------------------------------------------------------------------

// VoteCredits is the fixed per-round vote budget every voter may spend.
const VoteCredits uint64 = 20

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for deposits and disbursement.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// RoundsCount holds an integer counter for rounds (used for generating IDs).
	RoundsCount = "count:rnd"
	// SubmissionsCount holds an integer counter for submissions (used for generating IDs).
	SubmissionsCount = "count:sub"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kRound stores serialized Round blobs.
	kRound byte = 0x01
	// kSubmission stores serialized Submission blobs.
	kSubmission byte = 0x02
	// kVoterReceipt holds per (round, voter) allocation receipts.
	kVoterReceipt byte = 0x03
	// kAllocations stores the frozen AllocationSnapshot per round.
	kAllocations byte = 0x04
)

// ContractConfigKey stores the one-time admin configuration.
const ContractConfigKey = "cfg"

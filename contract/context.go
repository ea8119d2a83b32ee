package contract

import (
	"retro_pgf/sdk"
	"strconv"
	"time"
)

// getSenderAddress returns the host-verified caller of the current operation.
func getSenderAddress() sdk.Address {
	return sdk.GetEnv().Sender.Address
}

// getContractAddress is the account the chain credits deposits to and debits
// disbursements from.
func getContractAddress() sdk.Address {
	if ptr := sdk.GetEnvKey("contract.id"); ptr != nil && *ptr != "" {
		return sdk.Address(*ptr)
	}
	return sdk.Address("")
}

// nowUnix reads the chain timestamp, falling back to wall clock outside a block context.
func nowUnix() int64 {
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		// try parse as integer seconds
		if v, err := strconv.ParseInt(*tsPtr, 10, 64); err == nil {
			return v
		}
		// try RFC3339
		if t, err := time.Parse(time.RFC3339, *tsPtr); err == nil {
			return t.Unix()
		}
	}
	return time.Now().Unix()
}

// isValidAsset checks if a given token string is one of the supported assets.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// getFirstTransferAllow scans the call intents and returns the first
// transfer.allow limit for the given asset, nil when the caller granted none.
func getFirstTransferAllow(intents []sdk.Intent, asset string) *uint64 {
	for _, intent := range intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset {
			continue
		}
		limit, err := strconv.ParseUint(intent.Args["limit"], 10, 64)
		if err != nil {
			continue
		}
		return &limit
	}
	return nil
}

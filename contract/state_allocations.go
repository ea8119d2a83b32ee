package contract

import (
	"retro_pgf/sdk"

	tinyjson "github.com/CosmWasm/tinyjson"
)

// saveAllocationSnapshot persists the frozen per-submission funding shares.
// Called exactly once per round, from voting_close.
func saveAllocationSnapshot(snap *AllocationSnapshot) {
	data, err := tinyjson.Marshal(snap)
	if err != nil {
		sdk.Abort("failed to encode allocation snapshot")
	}
	sdk.StateSetObject(allocationsKey(snap.RoundID), string(data))
}

// loadAllocationSnapshot returns nil when voting has not been closed yet.
func loadAllocationSnapshot(roundID uint64) *AllocationSnapshot {
	ptr := sdk.StateGetObject(allocationsKey(roundID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var snap AllocationSnapshot
	if err := tinyjson.Unmarshal([]byte(*ptr), &snap); err != nil {
		sdk.Abort("failed to decode allocation snapshot")
	}
	return &snap
}

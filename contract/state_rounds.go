package contract

import (
	"retro_pgf/sdk"

	tinyjson "github.com/CosmWasm/tinyjson"
)

// saveRound persists a round record under its byte-prefixed key.
func saveRound(r *Round) {
	data, err := tinyjson.Marshal(r)
	if err != nil {
		sdk.Abort("failed to encode round")
	}
	sdk.StateSetObject(roundKey(r.ID), string(data))
}

// loadRound fetches a round or fails with the round-not-found error.
func loadRound(id uint64) (*Round, error) {
	ptr := sdk.StateGetObject(roundKey(id))
	if ptr == nil || *ptr == "" {
		return nil, ErrRoundNotFound
	}
	var r Round
	if err := tinyjson.Unmarshal([]byte(*ptr), &r); err != nil {
		sdk.Abort("failed to decode round")
	}
	return &r, nil
}

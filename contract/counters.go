package contract

import (
	"retro_pgf/sdk"
	"strconv"
)

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextID bumps the counter and returns the fresh id. IDs start at 1 so the
// zero value never collides with a stored entity. The host serializes calls,
// so read-increment-write is atomic from the contract's point of view.
func nextID(key string) uint64 {
	id := getCount(key) + 1
	setCount(key, id)
	return id
}

package contract

import "retro_pgf/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// roundKey builds a storage key string for a round by ID.
func roundKey(id uint64) string {
	var buf [9]byte
	buf[0] = kRound
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// submissionKey builds a storage key string for a submission by ID.
func submissionKey(id uint64) string {
	var buf [9]byte
	buf[0] = kSubmission
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voterReceiptKey mixes round id plus voter bytes so each (round, voter)
// pair lands on exactly one key.
func voterReceiptKey(roundID uint64, voter sdk.Address) string {
	addr := voter.String()
	buf := make([]byte, 0, 1+8+len(addr))
	buf = append(buf, kVoterReceipt)
	buf = packU64LE(roundID, buf)
	buf = append(buf, addr...)
	return string(buf)
}

// allocationsKey stores the frozen snapshot under 0x04 next to its round.
func allocationsKey(roundID uint64) string {
	var buf [9]byte
	buf[0] = kAllocations
	packU64LEInline(roundID, buf[1:])
	return string(buf[:])
}

package contract

import (
	"strconv"
	"strings"
)

// Strptr is a convenience helper for the wasm entrypoint return values.
func Strptr(s string) *string { return &s }

// UInt64ToString turns an id back into decimal text for logs or results.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// unwrapPayload trims quotes and whitespace, returning "" if the payload is empty.
func unwrapPayload(payload *string) string {
	if payload == nil {
		return ""
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		return ""
	}
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	return raw
}

package contract

import (
	"bytes"
	"encoding/binary"

	"retro_pgf/sdk"
)

// -----------------------------------------------------------------------------
// Voter Receipts
// -----------------------------------------------------------------------------

// voterReceipt is the per (round, voter) record. Its mere presence means the
// voter already spent their budget in that round; the detail is kept so the
// allocation can be replayed from storage alone.
type voterReceipt struct {
	Spent  uint64
	Detail []VoteAllocation
}

// saveVoterReceipt persists a voter's spent total and allocation detail.
func saveVoterReceipt(roundID uint64, voter sdk.Address, rec *voterReceipt) {
	sdk.StateSetObject(voterReceiptKey(roundID, voter), encodeVoterReceipt(rec))
}

// loadVoterReceipt returns nil when the voter has not allocated in the round yet.
func loadVoterReceipt(roundID uint64, voter sdk.Address) *voterReceipt {
	ptr := sdk.StateGetObject(voterReceiptKey(roundID, voter))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeVoterReceipt(*ptr)
}

// encodeVoterReceipt packs the receipt as uvarints: spent, count, then
// (submission id, votes) pairs in call order.
func encodeVoterReceipt(rec *voterReceipt) string {
	var buf bytes.Buffer
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], rec.Spent)
	buf.Write(tmp[:n])
	n = binary.PutUvarint(tmp[:], uint64(len(rec.Detail)))
	buf.Write(tmp[:n])
	for _, alloc := range rec.Detail {
		n = binary.PutUvarint(tmp[:], alloc.SubmissionID)
		buf.Write(tmp[:n])
		n = binary.PutUvarint(tmp[:], alloc.Votes)
		buf.Write(tmp[:n])
	}
	return buf.String()
}

func decodeVoterReceipt(data string) *voterReceipt {
	reader := bytes.NewReader([]byte(data))
	spent, err := binary.ReadUvarint(reader)
	if err != nil {
		sdk.Abort("failed to decode voter receipt")
	}
	count, err := binary.ReadUvarint(reader)
	if err != nil {
		sdk.Abort("failed to decode voter receipt count")
	}
	detail := make([]VoteAllocation, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := binary.ReadUvarint(reader)
		if err != nil {
			sdk.Abort("failed to decode voter receipt entry")
		}
		votes, err := binary.ReadUvarint(reader)
		if err != nil {
			sdk.Abort("failed to decode voter receipt entry")
		}
		detail = append(detail, VoteAllocation{SubmissionID: id, Votes: votes})
	}
	return &voterReceipt{Spent: spent, Detail: detail}
}

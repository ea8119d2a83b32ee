package contract

import (
	"retro_pgf/sdk"

	tinyjson "github.com/CosmWasm/tinyjson"
)

// saveSubmission persists a submission record under its byte-prefixed key.
func saveSubmission(s *Submission) {
	data, err := tinyjson.Marshal(s)
	if err != nil {
		sdk.Abort("failed to encode submission")
	}
	sdk.StateSetObject(submissionKey(s.ID), string(data))
}

// loadSubmission fetches a submission or fails with the submission-not-found error.
func loadSubmission(id uint64) (*Submission, error) {
	ptr := sdk.StateGetObject(submissionKey(id))
	if ptr == nil || *ptr == "" {
		return nil, ErrSubmissionNotFound
	}
	var s Submission
	if err := tinyjson.Unmarshal([]byte(*ptr), &s); err != nil {
		sdk.Abort("failed to decode submission")
	}
	return &s, nil
}

package model

import "fmt"

// ErrorKind classifies where in the pipeline a failure occurred
type ErrorKind string

const (
	ErrExtraction ErrorKind = "extraction_failure"   // LLM unreachable or unparsable during claim extraction
	ErrEvidence   ErrorKind = "evidence_unavailable" // Both search providers failed
	ErrVerdict    ErrorKind = "verdict_failure"      // LLM unreachable or unparsable during verification
	ErrSummary    ErrorKind = "summary_failure"      // Overall summary generation failed (non-fatal)
)

// StageError records a partial failure attached to the report.
// A claim-scoped error forces that claim's verdict to NEUTRAL/UNVERIFIED
// instead of aborting the whole request.
type StageError struct {
	Kind    ErrorKind `json:"kind"`
	ClaimID string    `json:"claim_id,omitempty"` // Empty for request-scoped failures
	Message string    `json:"message"`
	cause   error
}

// NewStageError wraps an underlying error with its pipeline classification
func NewStageError(kind ErrorKind, claimID string, cause error) StageError {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return StageError{Kind: kind, ClaimID: claimID, Message: msg, cause: cause}
}

func (e StageError) Error() string {
	if e.ClaimID != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.ClaimID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e StageError) Unwrap() error {
	return e.cause
}

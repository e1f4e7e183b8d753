package model

import "time"

// Report is the complete result of one fact-check request.
// Nothing in it persists beyond the request/response cycle.
type Report struct {
	JobID        string         `json:"job_id"`
	RunID        string         `json:"run_id"`
	CreatedAt    time.Time      `json:"created_at"`
	OriginalText string         `json:"original_text"`
	Language     string         `json:"language,omitempty"`
	Claims       []Claim        `json:"claims"`
	Verdicts     []ClaimVerdict `json:"verifications"`
	Overall      OverallResult  `json:"overall"`
	Summary      string         `json:"overall_summary,omitempty"`
	Errors       []StageError   `json:"errors,omitempty"` // Partial failures, surfaced rather than swallowed
}

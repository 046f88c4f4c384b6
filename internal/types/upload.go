package types

import "github.com/google/uuid"

// RowError captures a single row-creation failure with enough context for the
// caller to retry just that row.
type RowError struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// UploadReport summarizes one bulk-create run against the record store
type UploadReport struct {
	UploadID uuid.UUID  `json:"upload_id"`
	Total    int        `json:"total"`
	Created  int        `json:"created"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors,omitempty"`
}

// TailoredResume is the contract of the AI text-transformation service.
// TailoredText supersedes the rule-based enhancement when present, but the
// same preservation invariants apply: contact details are never altered.
type TailoredResume struct {
	TailoredText     string `json:"tailored_text"`
	MatchScore       int    `json:"match_score"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// JobRecord is a persisted job posting with storage metadata
type JobRecord struct {
	ID           uuid.UUID           `json:"id"`
	UploadID     *uuid.UUID          `json:"upload_id,omitempty"`
	CanonicalKey string              `json:"canonical_key"`
	Job          types.ParsedJobData `json:"job"`
	CreatedAt    time.Time           `json:"created_at"`
}

// JobCreateInput carries a validated row into the store
type JobCreateInput struct {
	UploadID     *uuid.UUID
	CanonicalKey string
	Job          types.ParsedJobData
}

package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory JobStore, safe for concurrent use. It backs
// dry-run uploads and tests where no database is available.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]JobRecord
}

// NewMemoryStore constructs an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[uuid.UUID]JobRecord)}
}

// CreateJob stores a job row and returns its generated ID
func (s *MemoryStore) CreateJob(ctx context.Context, input *JobCreateInput) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = JobRecord{
		ID:           id,
		UploadID:     input.UploadID,
		CanonicalKey: input.CanonicalKey,
		Job:          input.Job,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

// GetJobByID returns a stored job, or nil when absent
func (s *MemoryStore) GetJobByID(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// ListJobs returns stored jobs newest first with limit/offset paging
func (s *MemoryStore) ListJobs(ctx context.Context, limit, offset int) ([]JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.RLock()
	records := make([]JobRecord, 0, len(s.byID))
	for _, record := range s.byID {
		records = append(records, record)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if offset >= len(records) {
		return []JobRecord{}, nil
	}
	end := len(records)
	if offset+limit < end {
		end = offset + limit
	}
	return records[offset:end], nil
}

// ExistingCanonicalKeys returns the canonical keys of every stored job
func (s *MemoryStore) ExistingCanonicalKeys(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make(map[string]bool, len(s.byID))
	for _, record := range s.byID {
		keys[record.CanonicalKey] = true
	}
	return keys, nil
}

// CountJobs returns the number of stored jobs
func (s *MemoryStore) CountJobs(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID), nil
}

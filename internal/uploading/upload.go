// Package uploading persists validated job rows in small batches with
// progress reporting and cooperative cancellation.
package uploading

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobboard-pipeline/internal/db"
	"github.com/jonathan/jobboard-pipeline/internal/dedup"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// Batching defaults. Small batches with a pause between them keep the
// database load flat during large uploads.
const (
	DefaultBatchSize  = 3
	DefaultBatchDelay = 200 * time.Millisecond
)

// ProgressFunc receives the number of processed rows after each batch
type ProgressFunc func(processed, total int)

// Uploader writes validated jobs to a JobStore in batches
type Uploader struct {
	store      db.JobStore
	BatchSize  int
	BatchDelay time.Duration
	Progress   ProgressFunc
}

// New constructs an Uploader with default batching
func New(store db.JobStore) *Uploader {
	return &Uploader{
		store:      store,
		BatchSize:  DefaultBatchSize,
		BatchDelay: DefaultBatchDelay,
	}
}

// Upload persists jobs in batches. Rows within a batch are written
// concurrently; a failing row is recorded in the report without aborting its
// siblings. Cancellation is honored between batches and the partial report is
// returned alongside the context error.
func (u *Uploader) Upload(ctx context.Context, jobs []types.ParsedJobData) (*types.UploadReport, error) {
	report := &types.UploadReport{
		UploadID: uuid.New(),
		Total:    len(jobs),
	}

	batchSize := u.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var mu sync.Mutex
	processed := 0

	for start := 0; start < len(jobs); start += batchSize {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		end := start + batchSize
		if end > len(jobs) {
			end = len(jobs)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			index := i
			job := jobs[i]
			g.Go(func() error {
				input := &db.JobCreateInput{
					UploadID:     &report.UploadID,
					CanonicalKey: dedup.CanonicalKey(job),
					Job:          job,
				}
				_, err := u.store.CreateJob(gctx, input)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					report.Failed++
					report.Errors = append(report.Errors, types.RowError{
						Index:   index,
						Title:   job.Title,
						Company: job.Company,
						Message: err.Error(),
					})
				} else {
					report.Created++
				}
				return nil
			})
		}
		_ = g.Wait()

		processed = end
		if u.Progress != nil {
			u.Progress(processed, len(jobs))
		}

		if end < len(jobs) && u.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(u.BatchDelay):
			}
		}
	}

	return report, nil
}

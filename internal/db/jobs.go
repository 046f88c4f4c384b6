package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// JobStore abstracts job persistence so the upload pipeline can run against
// PostgreSQL in production and an in-memory store in tests and dry runs.
type JobStore interface {
	CreateJob(ctx context.Context, input *JobCreateInput) (uuid.UUID, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (*JobRecord, error)
	ListJobs(ctx context.Context, limit, offset int) ([]JobRecord, error)
	ExistingCanonicalKeys(ctx context.Context) (map[string]bool, error)
	CountJobs(ctx context.Context) (int, error)
}

// CreateJob inserts a validated job row and returns its ID
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (uuid.UUID, error) {
	id := uuid.New()

	requirementsJSON, err := json.Marshal(input.Job.Requirements)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}
	techStackJSON, err := json.Marshal(input.Job.TechStack)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tech stack: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (id, upload_id, canonical_key, title, company, location,
		        description, requirements, employment_type, experience_level,
		        salary_min, salary_max, salary_currency, tech_stack,
		        visa_sponsorship, remote, company_size, application_deadline,
		        logo, status, application_type, application_value, sponsored)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		         $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		id, input.UploadID, input.CanonicalKey,
		input.Job.Title, input.Job.Company, input.Job.Location, input.Job.Description,
		requirementsJSON, input.Job.EmploymentType, input.Job.ExperienceLevel,
		input.Job.SalaryMin, input.Job.SalaryMax, input.Job.SalaryCurrency,
		techStackJSON, input.Job.VisaSponsorship, input.Job.Remote,
		input.Job.CompanySize, input.Job.ApplicationDeadline, input.Job.Logo,
		input.Job.Status, input.Job.ApplicationType, input.Job.ApplicationValue,
		input.Job.Sponsored,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJobByID retrieves a job by its ID, or nil when absent
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	rows, err := db.pool.Query(ctx, selectJobColumns+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	record, err := scanJobRecord(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return record, nil
}

// ListJobs returns jobs newest first with limit/offset paging
func (db *DB) ListJobs(ctx context.Context, limit, offset int) ([]JobRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.pool.Query(ctx,
		selectJobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var records []JobRecord
	for rows.Next() {
		record, err := scanJobRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// ExistingCanonicalKeys returns the canonical keys of every stored job, used
// to flag uploads that duplicate postings already in the database.
func (db *DB) ExistingCanonicalKeys(ctx context.Context) (map[string]bool, error) {
	rows, err := db.pool.Query(ctx, `SELECT canonical_key FROM jobs`)
	if err != nil {
		return nil, fmt.Errorf("failed to load canonical keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to load canonical keys: %w", err)
		}
		keys[key] = true
	}
	return keys, rows.Err()
}

// CountJobs returns the total number of stored jobs
func (db *DB) CountJobs(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

const selectJobColumns = `SELECT id, upload_id, canonical_key, title, company, location,
       description, requirements, employment_type, experience_level,
       salary_min, salary_max, salary_currency, tech_stack,
       visa_sponsorship, remote, company_size, application_deadline,
       logo, status, application_type, application_value, sponsored, created_at`

// scanJobRecord scans one jobs row, decoding the JSONB array columns
func scanJobRecord(scan func(dest ...any) error) (*JobRecord, error) {
	var r JobRecord
	var job types.ParsedJobData
	var requirementsJSON, techStackJSON []byte

	err := scan(&r.ID, &r.UploadID, &r.CanonicalKey, &job.Title, &job.Company,
		&job.Location, &job.Description, &requirementsJSON, &job.EmploymentType,
		&job.ExperienceLevel, &job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency,
		&techStackJSON, &job.VisaSponsorship, &job.Remote, &job.CompanySize,
		&job.ApplicationDeadline, &job.Logo, &job.Status, &job.ApplicationType,
		&job.ApplicationValue, &job.Sponsored, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	if requirementsJSON != nil {
		_ = json.Unmarshal(requirementsJSON, &job.Requirements)
	}
	if techStackJSON != nil {
		_ = json.Unmarshal(techStackJSON, &job.TechStack)
	}

	r.Job = job
	return &r, nil
}

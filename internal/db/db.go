// Package db provides PostgreSQL persistence for uploaded job postings.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the jobs table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id               UUID PRIMARY KEY,
			upload_id        UUID,
			canonical_key    TEXT NOT NULL,
			title            TEXT NOT NULL,
			company          TEXT NOT NULL,
			location         TEXT NOT NULL,
			description      TEXT NOT NULL,
			requirements     JSONB,
			employment_type  TEXT,
			experience_level TEXT,
			salary_min       INTEGER,
			salary_max       INTEGER,
			salary_currency  TEXT,
			tech_stack       JSONB,
			visa_sponsorship BOOLEAN NOT NULL DEFAULT FALSE,
			remote           BOOLEAN NOT NULL DEFAULT FALSE,
			company_size     TEXT,
			application_deadline TEXT,
			logo             TEXT,
			status           TEXT NOT NULL DEFAULT 'active',
			application_type TEXT,
			application_value TEXT,
			sponsored        BOOLEAN NOT NULL DEFAULT FALSE,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS jobs_canonical_key_idx ON jobs (canonical_key);
		CREATE INDEX IF NOT EXISTS jobs_upload_id_idx ON jobs (upload_id);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

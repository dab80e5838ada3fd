// Package audit persists a history of validation runs to PostgreSQL.
//
// The audit log is optional infrastructure: a nil *Store is valid and every
// method on it is a no-op, so callers never branch on whether the database
// is configured.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one recorded validation run.
type Entry struct {
	ID             string    `json:"id"`
	FileName       string    `json:"fileName"`
	Variant        string    `json:"variant"`
	FirmID         string    `json:"firmId"`
	TotalRows      int       `json:"totalRows"`
	InvalidRows    int       `json:"invalidRows"`
	TotalErrors    int       `json:"totalErrors"`
	TotalWarnings  int       `json:"totalWarnings"`
	Passed         bool      `json:"passed"`
	DurationMillis int64     `json:"durationMillis"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store writes and reads validation run entries.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a store backed by the given pool. A nil pool yields a nil
// store, which disables the audit log.
func New(pool *pgxpool.Pool) *Store {
	if pool == nil {
		return nil
	}
	return &Store{pool: pool}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS validation_runs (
    id              UUID PRIMARY KEY,
    file_name       TEXT NOT NULL,
    variant         TEXT NOT NULL,
    firm_id         TEXT NOT NULL,
    total_rows      INTEGER NOT NULL,
    invalid_rows    INTEGER NOT NULL,
    total_errors    INTEGER NOT NULL,
    total_warnings  INTEGER NOT NULL,
    passed          BOOLEAN NOT NULL,
    duration_ms     BIGINT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_validation_runs_created_at
    ON validation_runs (created_at DESC);
`

// EnsureSchema creates the validation_runs table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

// Record inserts one validation run. The entry's ID and CreatedAt are
// assigned here.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil {
		return nil
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx, `
        INSERT INTO validation_runs
            (id, file_name, variant, firm_id, total_rows, invalid_rows,
             total_errors, total_warnings, passed, duration_ms, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.FileName, e.Variant, e.FirmID, e.TotalRows, e.InvalidRows,
		e.TotalErrors, e.TotalWarnings, e.Passed, e.DurationMillis, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("record validation run: %w", err)
	}
	return nil
}

// Recent returns the latest validation runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
        SELECT id, file_name, variant, firm_id, total_rows, invalid_rows,
               total_errors, total_warnings, passed, duration_ms, created_at
        FROM validation_runs
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query validation runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.FileName, &e.Variant, &e.FirmID,
			&e.TotalRows, &e.InvalidRows, &e.TotalErrors, &e.TotalWarnings,
			&e.Passed, &e.DurationMillis, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan validation run: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validation runs: %w", err)
	}
	return entries, nil
}

package database

import (
	"context"
	"fmt"
)

// EnsureSchema creates the application tables if they do not exist yet.
// The database is created on first start, there is no separate migration step.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS work_days (
			id         UUID PRIMARY KEY,
			date       DATE NOT NULL UNIQUE,
			work_type  TEXT NOT NULL CHECK (work_type IN ('home', 'absence')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			id         UUID PRIMARY KEY,
			date       DATE NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			category   TEXT NOT NULL CHECK (category IN ('National', 'Regional', 'Local')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type migration struct {
	version    int
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS nodes (
				id VARCHAR PRIMARY KEY,
				label VARCHAR NOT NULL,
				properties JSON,
				created_at TIMESTAMP NOT NULL DEFAULT now(),
				updated_at TIMESTAMP NOT NULL DEFAULT now()
			)`,
		},
	},
	{
		version: 2,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS relationships (
				id VARCHAR PRIMARY KEY,
				type VARCHAR NOT NULL,
				start_id VARCHAR NOT NULL,
				end_id VARCHAR NOT NULL,
				properties JSON,
				created_at TIMESTAMP NOT NULL DEFAULT now()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_relationships_start ON relationships (start_id)`,
			`CREATE INDEX IF NOT EXISTS idx_relationships_end ON relationships (end_id)`,
		},
	},
}

// Run applies all pending migrations. Applied versions are tracked in the
// schema_migrations table, so running twice is safe.
func Run(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	logger := zap.S().Named("migrations")
	for _, m := range migrations {
		if applied[m.version] {
			continue
		}

		logger.Infow("applying migration", "version", m.version)
		for _, stmt := range m.statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
			}
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

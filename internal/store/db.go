package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
)

// NewDB opens the DuckDB database at path (":memory:" for an in-memory
// database). Opening is retried with exponential backoff: the file may be
// briefly locked by a previous instance still shutting down.
func NewDB(path string) (*sql.DB, error) {
	open := func() (*sql.DB, error) {
		db, err := sql.Open("duckdb", path)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			zap.S().Named("store").Warnw("database not ready yet", "path", path, "error", err)
			return nil, err
		}
		return db, nil
	}

	db, err := backoff.Retry(context.Background(), open,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(5),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	// the writer is the only goroutine mutating the database, but reads
	// may come from multiple goroutines
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

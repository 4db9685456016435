package store

// Event repo infrastructure.
//
// Every generate, grade or practice run appends one row to run_events.
// Rows carry a UUID for external reference and a global sequence number
// for ordering.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter manages the global monotonic sequence number assigned to
// every run event. Run IDs are random UUIDs, so they cannot order events;
// the sequence can, and QueryOpts.After/Before page over it.
//
// The mutex serializes within the process. The RETURNING clause keeps the
// increment atomic across processes sharing one history file.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter ensures the single-row run_sequence table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS run_sequence (
			singleton INTEGER PRIMARY KEY CHECK (singleton = 0),
			last INTEGER NOT NULL
		)`,
		`INSERT OR IGNORE INTO run_sequence (singleton, last) VALUES (0, 0)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init run sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves and returns the next sequence number, starting at 1.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	row := sc.db.QueryRowContext(ctx,
		`UPDATE run_sequence SET last = last + 1 WHERE singleton = 0 RETURNING last`)
	if err := row.Scan(&seq); err != nil {
		return 0, fmt.Errorf("next run sequence: %w", err)
	}
	return seq, nil
}

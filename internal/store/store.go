package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the run_events table and its indexes.
func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + runEventsTable + ` (
			` + colID + ` TEXT NOT NULL PRIMARY KEY,
			` + colSequence + ` INTEGER NOT NULL UNIQUE,
			` + colTimestamp + ` INTEGER NOT NULL,
			` + colKind + ` TEXT NOT NULL,
			` + colRequested + ` INTEGER NOT NULL DEFAULT 0,
			` + colProduced + ` INTEGER NOT NULL DEFAULT 0,
			` + colAttempts + ` INTEGER NOT NULL DEFAULT 0,
			` + colCorrect + ` INTEGER NOT NULL DEFAULT 0,
			` + colWrong + ` INTEGER NOT NULL DEFAULT 0,
			` + colRange + ` INTEGER NOT NULL DEFAULT 0,
			` + colSeed + ` INTEGER NOT NULL DEFAULT 0,
			` + colSource + ` TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS run_events_timestamp ON ` + runEventsTable + ` (` + colTimestamp + `)`,
		`CREATE INDEX IF NOT EXISTS run_events_kind ON ` + runEventsTable + ` (` + colKind + `)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHEX_DB environment variable
// 2. $XDG_DATA_HOME/mathex/history.db
// 3. ~/.local/share/mathex/history.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHEX_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathex", "history.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

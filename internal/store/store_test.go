package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabase_WAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.EventRepo().AppendRun(ctx, RunEventData{Kind: RunGenerate, Requested: 3, Produced: 3}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	ev, err := s.EventRepo().AppendRun(ctx, RunEventData{Kind: RunGrade})
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if ev.Sequence != 2 {
		t.Errorf("sequence after reopen = %d, want 2", ev.Sequence)
	}

	events, err := s.EventRepo().QueryRuns(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MATHEX_DB", filepath.Join(dir, "custom", "runs.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join(dir, "custom", "runs.db") {
		t.Errorf("MATHEX_DB: got %q", p)
	}

	t.Setenv("MATHEX_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join(dir, "mathex", "history.db") {
		t.Errorf("XDG_DATA_HOME: got %q", p)
	}
}

func TestRunEvent_Shortfall(t *testing.T) {
	ev := RunEvent{RunEventData: RunEventData{Requested: 10, Produced: 7}}
	if ev.Shortfall() != 3 {
		t.Errorf("Shortfall() = %d, want 3", ev.Shortfall())
	}
	ev.Produced = 10
	if ev.Shortfall() != 0 {
		t.Errorf("Shortfall() = %d, want 0", ev.Shortfall())
	}
}

func TestMigrate_CreatesRunEventsSchema(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	rows, err := db.Query("PRAGMA table_info(" + runEventsTable + ")")
	if err != nil {
		t.Fatalf("table_info: %v", err)
	}
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    any
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			t.Fatalf("scan column: %v", err)
		}
		cols[name] = true
		if name == colID && pk != 1 {
			t.Errorf("%s is not the primary key", colID)
		}
	}
	for _, c := range []string{colID, colSequence, colTimestamp, colKind, colRequested, colProduced,
		colAttempts, colCorrect, colWrong, colRange, colSeed, colSource} {
		if !cols[c] {
			t.Errorf("missing column %q", c)
		}
	}

	for _, idx := range []string{"run_events_timestamp", "run_events_kind"} {
		var n int
		err := db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'index' AND name = ?`, idx).Scan(&n)
		if err != nil {
			t.Fatalf("lookup index %s: %v", idx, err)
		}
		if n != 1 {
			t.Errorf("index %s: found %d, want 1", idx, n)
		}
	}

	// Migrating an existing database is a no-op.
	if err := migrate(context.Background(), db); err != nil {
		t.Errorf("second migrate: %v", err)
	}
}

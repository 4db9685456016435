package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Kind   RunKind   // empty = all kinds
}

// RunKind distinguishes worksheet generation from grading.
type RunKind string

const (
	RunGenerate RunKind = "generate"
	RunGrade    RunKind = "grade"
	RunPractice RunKind = "practice"
)

// RunEventData captures the outcome of one command run.
type RunEventData struct {
	Kind      RunKind
	Requested int    // exercises asked for (generate, practice)
	Produced  int    // exercises produced (generate, practice)
	Attempts  int    // slot attempts spent by the generator
	Correct   int    // correct lines or answers (grade, practice)
	Wrong     int    // wrong lines or answers (grade, practice)
	Range     int    // range bound (generate, practice)
	Seed      uint64 // seed, when one was given
	Source    string // exercises file or output directory
}

// RunEvent is a stored run.
type RunEvent struct {
	ID        uuid.UUID
	Sequence  int64
	Timestamp time.Time
	RunEventData
}

// Shortfall returns how many requested exercises were not produced.
func (e RunEvent) Shortfall() int {
	if e.Produced >= e.Requested {
		return 0
	}
	return e.Requested - e.Produced
}

// EventRepo provides append and query access to run events.
type EventRepo interface {
	// AppendRun records a run and returns the stored event.
	AppendRun(ctx context.Context, data RunEventData) (*RunEvent, error)

	// QueryRuns returns runs matching opts, most recent first.
	QueryRuns(ctx context.Context, opts QueryOpts) ([]RunEvent, error)
}

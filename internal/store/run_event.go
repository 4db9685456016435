package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const runEventsTable = "run_events"

const (
	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
	colKind      = "kind"
	colRequested = "requested"
	colProduced  = "produced"
	colAttempts  = "attempts"
	colCorrect   = "correct"
	colWrong     = "wrong"
	colRange     = "range_bound"
	colSeed      = "seed"
	colSource    = "source"
)

var runEventColumns = []string{
	colID, colSequence, colTimestamp, colKind,
	colRequested, colProduced, colAttempts, colCorrect, colWrong,
	colRange, colSeed, colSource,
}

// eventRepo implements EventRepo backed by SQL builders and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendRun(ctx context.Context, data RunEventData) (*RunEvent, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	ev := &RunEvent{
		ID:           uuid.New(),
		Sequence:     seqNum,
		Timestamp:    time.Now().UTC(),
		RunEventData: data,
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(runEventsTable).
		Columns(runEventColumns...).
		Values(
			ev.ID.String(), ev.Sequence, ev.Timestamp.UnixNano(), string(data.Kind),
			data.Requested, data.Produced, data.Attempts, data.Correct, data.Wrong,
			data.Range, int64(data.Seed), data.Source,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("save run event: %w", err)
	}
	return ev, nil
}

func (r *eventRepo) QueryRuns(ctx context.Context, opts QueryOpts) ([]RunEvent, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(runEventColumns...).
		From(b.Table(runEventsTable))

	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, opts.To.UnixNano()))
	}
	if opts.Kind != "" {
		sel.Where(entsql.EQ(colKind, string(opts.Kind)))
	}
	sel.OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query run events: %w", err)
	}
	defer rows.Close()

	var events []RunEvent
	for rows.Next() {
		ev, err := scanRunEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query run events: %w", err)
	}
	return events, nil
}

func scanRunEvent(rows *sql.Rows) (RunEvent, error) {
	var (
		ev   RunEvent
		id   string
		ts   int64
		kind string
		seed int64
	)
	err := rows.Scan(
		&id, &ev.Sequence, &ts, &kind,
		&ev.Requested, &ev.Produced, &ev.Attempts, &ev.Correct, &ev.Wrong,
		&ev.Range, &seed, &ev.Source,
	)
	if err != nil {
		return RunEvent{}, fmt.Errorf("scan run event: %w", err)
	}

	ev.ID, err = uuid.Parse(id)
	if err != nil {
		return RunEvent{}, fmt.Errorf("parse run id %q: %w", id, err)
	}
	ev.Timestamp = time.Unix(0, ts).UTC()
	ev.Kind = RunKind(kind)
	ev.Seed = uint64(seed)
	return ev, nil
}

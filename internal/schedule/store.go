package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// DB abstracts the pgx query interface for testing.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the Postgres-backed Repository. Commit serializes writers per
// worker with a transaction-scoped advisory lock and then runs the overlap
// and daily-cap guards inside the insert statement itself.
type Store struct {
	db       DB
	buffer   time.Duration
	maxDaily int
}

// NewStore creates a Postgres schedule store.
func NewStore(db DB, bufferMinutes, maxDailyBookings int) *Store {
	return &Store{
		db:       db,
		buffer:   time.Duration(bufferMinutes) * time.Minute,
		maxDaily: maxDailyBookings,
	}
}

// IntervalsOn returns the worker's intervals on the given day.
func (s *Store) IntervalsOn(ctx context.Context, workerID string, day time.Time) ([]booking.Interval, error) {
	dayStart, dayEnd := dayBounds(day)
	rows, err := s.db.Query(ctx, `
		SELECT id, worker_id, booking_id, start_at, end_at
		FROM schedule_intervals
		WHERE worker_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at ASC`, workerID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("schedule: list intervals: %w", err)
	}
	defer rows.Close()

	var out []booking.Interval
	for rows.Next() {
		var iv booking.Interval
		if err := rows.Scan(&iv.ID, &iv.WorkerID, &iv.BookingID, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("schedule: scan interval: %w", err)
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schedule: iterate intervals: %w", err)
	}
	return out, nil
}

// Commit inserts the interval unless it overlaps a buffer-expanded existing
// interval or the worker already holds the daily maximum. Zero rows affected
// means the guard refused the insert.
func (s *Store) Commit(ctx context.Context, iv booking.Interval) error {
	if iv.ID == "" {
		iv.ID = uuid.NewString()
	}
	dayStart, dayEnd := dayBounds(iv.Start)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("schedule: begin commit: %w", err)
	}
	defer tx.Rollback(ctx)

	// Under READ COMMITTED two concurrent guarded inserts for the same worker
	// each evaluate NOT EXISTS against a pre-insert snapshot and both pass.
	// The advisory lock makes the second writer wait until the first commits,
	// so its guard sees the committed row.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, iv.WorkerID); err != nil {
		return fmt.Errorf("schedule: lock worker lane: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO schedule_intervals (id, worker_id, booking_id, start_at, end_at, created_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM schedule_intervals
			WHERE worker_id = $2 AND start_at < $7 AND end_at > $8
		)
		AND (
			SELECT count(*) FROM schedule_intervals
			WHERE worker_id = $2 AND start_at >= $9 AND start_at < $10
		) < $11`,
		iv.ID, iv.WorkerID, iv.BookingID, iv.Start, iv.End, time.Now().UTC(),
		iv.End.Add(s.buffer), iv.Start.Add(-s.buffer),
		dayStart, dayEnd, s.maxDaily,
	)
	if err != nil {
		return fmt.Errorf("schedule: commit interval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("schedule: commit interval: %w", err)
	}
	return nil
}

var _ Repository = (*Store)(nil)

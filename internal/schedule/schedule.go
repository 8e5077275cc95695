// Package schedule persists committed appointment intervals per worker. The
// Commit contract is the concurrency boundary for assignment: an interval is
// inserted only if, at commit time, it neither overlaps an existing interval
// (after buffer expansion) nor exceeds the worker's daily booking cap.
package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// ErrConflict is returned by Commit when the interval lost the slot to an
// existing booking or hit the daily cap.
var ErrConflict = errors.New("schedule: interval conflicts with worker schedule")

// Repository is the schedule store consumed by the availability finder and
// the orchestrator.
type Repository interface {
	// IntervalsOn returns the worker's committed intervals on the given day,
	// ordered by start time.
	IntervalsOn(ctx context.Context, workerID string, day time.Time) ([]booking.Interval, error)
	// Commit inserts the interval, enforcing buffer overlap and daily cap
	// checks atomically with the insert. Returns ErrConflict when refused.
	Commit(ctx context.Context, iv booking.Interval) error
}

// Overlaps tests half-open overlap of [start, end) against existing after
// expanding existing by buffer on both sides. The buffer covers travel and
// setup between jobs, so it applies before and after every booking.
func Overlaps(start, end time.Time, existing booking.Interval, buffer time.Duration) bool {
	expStart := existing.Start.Add(-buffer)
	expEnd := existing.End.Add(buffer)
	return start.Before(expEnd) && end.After(expStart)
}

// dayBounds returns the UTC [00:00, 24:00) window containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// MemoryStore is an in-memory Repository. Check-and-commit is serialized per
// worker, so two concurrent requests for the same worker and overlapping
// window cannot both succeed.
type MemoryStore struct {
	buffer   time.Duration
	maxDaily int

	mu    sync.Mutex
	lanes map[string]*lane
}

type lane struct {
	mu        sync.Mutex
	intervals []booking.Interval
}

// NewMemoryStore creates an in-memory schedule store.
func NewMemoryStore(bufferMinutes, maxDailyBookings int) *MemoryStore {
	return &MemoryStore{
		buffer:   time.Duration(bufferMinutes) * time.Minute,
		maxDaily: maxDailyBookings,
		lanes:    make(map[string]*lane),
	}
}

func (s *MemoryStore) laneFor(workerID string) *lane {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lanes[workerID]
	if !ok {
		l = &lane{}
		s.lanes[workerID] = l
	}
	return l
}

// IntervalsOn returns the worker's intervals on the given day.
func (s *MemoryStore) IntervalsOn(_ context.Context, workerID string, day time.Time) ([]booking.Interval, error) {
	dayStart, dayEnd := dayBounds(day)
	l := s.laneFor(workerID)
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []booking.Interval
	for _, iv := range l.intervals {
		if !iv.Start.Before(dayStart) && iv.Start.Before(dayEnd) {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// Commit re-checks overlap and the daily cap under the worker's lock before
// appending, making find+assign one atomic unit per worker.
func (s *MemoryStore) Commit(_ context.Context, iv booking.Interval) error {
	if iv.ID == "" {
		iv.ID = uuid.NewString()
	}
	dayStart, dayEnd := dayBounds(iv.Start)

	l := s.laneFor(iv.WorkerID)
	l.mu.Lock()
	defer l.mu.Unlock()

	sameDay := 0
	for _, existing := range l.intervals {
		if !existing.Start.Before(dayStart) && existing.Start.Before(dayEnd) {
			sameDay++
		}
		if Overlaps(iv.Start, iv.End, existing, s.buffer) {
			return ErrConflict
		}
	}
	if sameDay >= s.maxDaily {
		return ErrConflict
	}

	l.intervals = append(l.intervals, iv)
	return nil
}

var _ Repository = (*MemoryStore)(nil)

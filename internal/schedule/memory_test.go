package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
)

func day(hour, min int) time.Time {
	return time.Date(2025, 12, 10, hour, min, 0, 0, time.UTC)
}

func TestMemoryStore_BufferExpansion(t *testing.T) {
	store := NewMemoryStore(30, 6)
	ctx := context.Background()

	if err := store.Commit(ctx, booking.Interval{
		WorkerID: "w1", BookingID: "b1", Start: day(10, 0), End: day(12, 0),
	}); err != nil {
		t.Fatalf("seed commit failed: %v", err)
	}

	// [12:15, 13:00) overlaps the expanded [09:30, 12:30).
	err := store.Commit(ctx, booking.Interval{
		WorkerID: "w1", BookingID: "b2", Start: day(12, 15), End: day(13, 0),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict inside buffer, got %v", err)
	}

	// [12:30, 13:30) touches the expanded end exactly and is allowed.
	if err := store.Commit(ctx, booking.Interval{
		WorkerID: "w1", BookingID: "b3", Start: day(12, 30), End: day(13, 30),
	}); err != nil {
		t.Fatalf("expected slot after buffer to be free, got %v", err)
	}

	// Buffer applies before the booking as well.
	err = store.Commit(ctx, booking.Interval{
		WorkerID: "w1", BookingID: "b4", Start: day(9, 0), End: day(9, 45),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict against leading buffer, got %v", err)
	}
}

func TestMemoryStore_DailyCap(t *testing.T) {
	store := NewMemoryStore(0, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		iv := booking.Interval{
			WorkerID:  "w1",
			BookingID: fmt.Sprintf("b%d", i),
			Start:     day(7+2*i, 0),
			End:       day(8+2*i, 0),
		}
		if err := store.Commit(ctx, iv); err != nil {
			t.Fatalf("commit %d failed: %v", i, err)
		}
	}

	err := store.Commit(ctx, booking.Interval{
		WorkerID: "w1", BookingID: "b-over", Start: day(17, 0), End: day(18, 0),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected daily cap conflict, got %v", err)
	}

	// A different worker is unaffected.
	if err := store.Commit(ctx, booking.Interval{
		WorkerID: "w2", BookingID: "b-w2", Start: day(17, 0), End: day(18, 0),
	}); err != nil {
		t.Fatalf("other worker should be free: %v", err)
	}
}

func TestMemoryStore_IntervalsOnFiltersByDay(t *testing.T) {
	store := NewMemoryStore(30, 6)
	ctx := context.Background()

	sameDay := booking.Interval{WorkerID: "w1", BookingID: "b1", Start: day(10, 0), End: day(12, 0)}
	nextDay := booking.Interval{
		WorkerID: "w1", BookingID: "b2",
		Start: day(10, 0).Add(24 * time.Hour), End: day(12, 0).Add(24 * time.Hour),
	}
	for _, iv := range []booking.Interval{sameDay, nextDay} {
		if err := store.Commit(ctx, iv); err != nil {
			t.Fatalf("commit failed: %v", err)
		}
	}

	got, err := store.IntervalsOn(ctx, "w1", day(0, 0))
	if err != nil {
		t.Fatalf("IntervalsOn failed: %v", err)
	}
	if len(got) != 1 || got[0].BookingID != "b1" {
		t.Fatalf("expected only same-day interval, got %+v", got)
	}
}

func TestMemoryStore_ConcurrentCommitsOneWinner(t *testing.T) {
	store := NewMemoryStore(30, 6)
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n] = store.Commit(ctx, booking.Interval{
				WorkerID:  "w1",
				BookingID: fmt.Sprintf("b%d", n),
				Start:     day(10, 0),
				End:       day(12, 0),
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else if !errors.Is(err, ErrConflict) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning commit, got %d", wins)
	}
}

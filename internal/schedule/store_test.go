package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/Supremetechy/go-ham/internal/booking"
)

func TestStore_CommitInserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("w1").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("INSERT INTO schedule_intervals").
		WithArgs(
			pgxmock.AnyArg(), "w1", "b1",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 6,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	store := NewStore(mock, 30, 6)
	err = store.Commit(context.Background(), booking.Interval{
		WorkerID:  "w1",
		BookingID: "b1",
		Start:     day(10, 0),
		End:       day(12, 0),
	})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStore_CommitConflictWhenGuardRefuses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("w1").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("INSERT INTO schedule_intervals").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectRollback()

	store := NewStore(mock, 30, 6)
	err = store.Commit(context.Background(), booking.Interval{
		WorkerID:  "w1",
		BookingID: "b1",
		Start:     day(10, 0),
		End:       day(12, 0),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on zero rows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// The advisory lock must be taken before the guarded insert so a second
// writer for the same worker waits until the first transaction commits.
// pgxmock verifies expectations in order, so an insert issued before the
// lock would fail the test.
func TestStore_CommitLocksWorkerLaneFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("w2").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("INSERT INTO schedule_intervals").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	store := NewStore(mock, 30, 6)
	err = store.Commit(context.Background(), booking.Interval{
		WorkerID:  "w2",
		BookingID: "b9",
		Start:     day(14, 0),
		End:       day(15, 0),
	})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStore_CommitRollsBackOnLockError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("w1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	store := NewStore(mock, 30, 6)
	err = store.Commit(context.Background(), booking.Interval{
		WorkerID:  "w1",
		BookingID: "b1",
		Start:     day(10, 0),
		End:       day(12, 0),
	})
	if err == nil || errors.Is(err, ErrConflict) {
		t.Fatalf("expected wrapped lock error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStore_IntervalsOn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	dayStart := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "worker_id", "booking_id", "start_at", "end_at"}).
		AddRow("iv-1", "w1", "b1", day(10, 0), day(12, 0)).
		AddRow("iv-2", "w1", "b2", day(14, 0), day(15, 30))

	mock.ExpectQuery("SELECT id, worker_id, booking_id, start_at, end_at").
		WithArgs("w1", dayStart, dayStart.Add(24*time.Hour)).
		WillReturnRows(rows)

	store := NewStore(mock, 30, 6)
	got, err := store.IntervalsOn(context.Background(), "w1", dayStart)
	if err != nil {
		t.Fatalf("IntervalsOn failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(got))
	}
	if got[0].BookingID != "b1" || !got[1].Start.Equal(day(14, 0)) {
		t.Errorf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

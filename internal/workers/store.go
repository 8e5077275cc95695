package workers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// DB abstracts the pgx query interface for testing.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the Postgres-backed Directory. Capability matching is fuzzy, so
// filtering happens in Go after loading the active roster; rosters are small
// enough that this is not a concern.
type Store struct {
	db DB
}

// NewStore creates a Postgres worker directory.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// All returns every active worker ordered by name.
func (s *Store) All(ctx context.Context) ([]booking.Worker, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, email, phone, zone, capabilities, experience_years, rating, active
		FROM workers
		WHERE active
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("workers: list active: %w", err)
	}
	defer rows.Close()
	return scanWorkers(rows)
}

// FindByCapability returns active workers that handle the service type.
func (s *Store) FindByCapability(ctx context.Context, st booking.ServiceType) ([]booking.Worker, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []booking.Worker
	for _, w := range all {
		if w.Handles(st) {
			out = append(out, w)
		}
	}
	return out, nil
}

func scanWorkers(rows pgx.Rows) ([]booking.Worker, error) {
	var out []booking.Worker
	for rows.Next() {
		var (
			w    booking.Worker
			zone string
			caps []string
		)
		if err := rows.Scan(&w.ID, &w.Name, &w.Email, &w.Phone, &zone, &caps, &w.ExperienceYears, &w.Rating, &w.Active); err != nil {
			return nil, fmt.Errorf("workers: scan worker: %w", err)
		}
		w.Zone = booking.Zone(zone)
		w.Capabilities = make([]booking.ServiceType, len(caps))
		for i, c := range caps {
			w.Capabilities[i] = booking.ServiceType(c)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workers: iterate workers: %w", err)
	}
	return out, nil
}

var _ Directory = (*Store)(nil)

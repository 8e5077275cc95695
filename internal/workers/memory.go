package workers

import (
	"context"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// MemoryDirectory serves a fixed roster from memory. The roster is copied at
// construction and never mutated afterwards.
type MemoryDirectory struct {
	roster []booking.Worker
}

// NewMemoryDirectory creates a directory over the given roster.
func NewMemoryDirectory(roster []booking.Worker) *MemoryDirectory {
	copied := make([]booking.Worker, len(roster))
	copy(copied, roster)
	return &MemoryDirectory{roster: copied}
}

// FindByCapability returns active workers that handle the service type, in
// roster order.
func (d *MemoryDirectory) FindByCapability(_ context.Context, st booking.ServiceType) ([]booking.Worker, error) {
	var out []booking.Worker
	for _, w := range d.roster {
		if w.Active && w.Handles(st) {
			out = append(out, w)
		}
	}
	return out, nil
}

// All returns every active worker in roster order.
func (d *MemoryDirectory) All(_ context.Context) ([]booking.Worker, error) {
	var out []booking.Worker
	for _, w := range d.roster {
		if w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

var _ Directory = (*MemoryDirectory)(nil)

// Package workers provides read-only lookup of field workers by service
// capability. Worker management mutations happen elsewhere; this layer never
// writes.
package workers

import (
	"context"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// Directory looks up workers for scheduling and alerting.
type Directory interface {
	// FindByCapability returns active workers whose capabilities cover the
	// service type (fuzzy match, see booking.Worker.Handles).
	FindByCapability(ctx context.Context, st booking.ServiceType) ([]booking.Worker, error)
	// All returns every active worker.
	All(ctx context.Context) ([]booking.Worker, error)
}

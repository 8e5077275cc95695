package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Supremetechy/go-ham/internal/booking"
)

func TestZoneDistanceProvider(t *testing.T) {
	p := ZoneDistanceProvider{}
	north := booking.Worker{Zone: booking.ZoneNorth}
	south := booking.Worker{Zone: booking.ZoneSouth}

	// Same zone: zero distance between identical centroids.
	assert.Zero(t, p.Distance(north, "12 Uptown Blvd"))

	// Cross-zone: positive, symmetric.
	d1 := p.Distance(north, "12 Riverside Dr")
	d2 := p.Distance(south, "12 Uptown Blvd")
	assert.Greater(t, d1, 0.0)
	assert.InDelta(t, d1, d2, 1e-9)

	// Unknown zones fall back to the central centroid.
	unknown := booking.Worker{Zone: booking.Zone("offshore")}
	assert.Zero(t, p.Distance(unknown, "5 Main Street"))
}

func TestFixedDistanceProvider(t *testing.T) {
	p := FixedDistanceProvider(12.5)
	assert.Equal(t, 12.5, p.Distance(booking.Worker{}, "anywhere"))
}

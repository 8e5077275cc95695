package scheduling

import (
	"math"

	"github.com/Supremetechy/go-ham/internal/alerts"
	"github.com/Supremetechy/go-ham/internal/booking"
)

// DistanceProvider estimates the distance in miles between a worker's base
// and a customer address.
type DistanceProvider interface {
	Distance(w booking.Worker, address string) float64
}

// zone centroids, WGS84.
var zoneCentroids = map[booking.Zone]struct{ lat, lng float64 }{
	booking.ZoneNorth:   {40.7589, -73.9851},
	booking.ZoneSouth:   {40.7505, -73.9934},
	booking.ZoneCentral: {40.7549, -73.9840},
	booking.ZoneEast:    {40.7614, -73.9776},
	booking.ZoneWest:    {40.7505, -73.9971},
}

// ZoneDistanceProvider maps the address to a zone by keyword and measures the
// great-circle distance between zone centroids. Coarse, but deterministic and
// free of external geocoding.
type ZoneDistanceProvider struct{}

func (ZoneDistanceProvider) Distance(w booking.Worker, address string) float64 {
	from, ok := zoneCentroids[w.Zone]
	if !ok {
		from = zoneCentroids[booking.ZoneCentral]
	}
	to, ok := zoneCentroids[alerts.ZoneForAddress(address)]
	if !ok {
		to = zoneCentroids[booking.ZoneCentral]
	}
	return haversineMiles(from.lat, from.lng, to.lat, to.lng)
}

// haversineMiles returns the great-circle distance between two coordinates.
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMiles = 3958.8

	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// FixedDistanceProvider returns the same distance for every pair. Test use
// only.
type FixedDistanceProvider float64

func (f FixedDistanceProvider) Distance(booking.Worker, string) float64 {
	return float64(f)
}

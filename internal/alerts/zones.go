package alerts

import (
	"strings"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// zoneKeywords maps a zone to address fragments that place a customer inside
// it. This is a stand-in for real geocoding; zones without keywords only
// match through the central catch-all.
var zoneKeywords = map[booking.Zone][]string{
	booking.ZoneNorth:   {"north", "uptown", "highland", "oakwood", "summit"},
	booking.ZoneSouth:   {"south", "downtown", "riverside", "greenfield", "valley"},
	booking.ZoneCentral: {"central", "midtown", "city center", "main street", "downtown"},
}

// InZone reports whether the address falls inside the worker zone. Central
// workers cover every address.
func InZone(address string, zone booking.Zone) bool {
	if zone == booking.ZoneCentral {
		return true
	}
	addr := strings.ToLower(address)
	for _, kw := range zoneKeywords[zone] {
		if strings.Contains(addr, kw) {
			return true
		}
	}
	return false
}

// ZoneForAddress returns the first zone whose keywords match the address,
// defaulting to central.
func ZoneForAddress(address string) booking.Zone {
	addr := strings.ToLower(address)
	for _, zone := range []booking.Zone{booking.ZoneNorth, booking.ZoneSouth, booking.ZoneCentral} {
		for _, kw := range zoneKeywords[zone] {
			if strings.Contains(addr, kw) {
				return zone
			}
		}
	}
	return booking.ZoneCentral
}

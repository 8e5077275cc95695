package booking

import "time"

// DefaultServiceMinutes is the fallback duration for service types the
// catalog does not know about.
const DefaultServiceMinutes = 120

// Catalog maps service types to their fixed appointment durations. It is
// built once at startup and read-only afterwards.
type Catalog struct {
	minutes map[ServiceType]int
}

// DefaultCatalog returns the standard service lineup.
func DefaultCatalog() *Catalog {
	return &Catalog{minutes: map[ServiceType]int{
		ServiceHouseWashing:      180,
		ServiceMobileDetailing:   90,
		ServiceGutterCleaning:    120,
		ServiceCommercialWashing: 240,
		ServiceDrivewayCleaning:  60,
		ServiceDeckCleaning:      150,
	}}
}

// Duration returns the appointment length for a service type, defaulting to
// two hours for unknown types.
func (c *Catalog) Duration(st ServiceType) time.Duration {
	if m, ok := c.minutes[st]; ok {
		return time.Duration(m) * time.Minute
	}
	return DefaultServiceMinutes * time.Minute
}

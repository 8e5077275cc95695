package workers

import "github.com/Supremetechy/go-ham/internal/booking"

// DefaultRoster is the built-in field team used when no database is
// configured. Experience and ratings mirror the dispatch records.
func DefaultRoster() []booking.Worker {
	return []booking.Worker{
		{
			ID:              "w-mike",
			Name:            "Mike Johnson",
			Email:           "mike@gohampro.com",
			Phone:           "+15550101",
			Zone:            booking.ZoneNorth,
			Capabilities:    []booking.ServiceType{booking.ServiceMobileDetailing, booking.ServiceHouseWashing},
			ExperienceYears: 5,
			Rating:          4.9,
			Active:          true,
		},
		{
			ID:              "w-sarah",
			Name:            "Sarah Davis",
			Email:           "sarah@gohampro.com",
			Phone:           "+15550102",
			Zone:            booking.ZoneSouth,
			Capabilities:    []booking.ServiceType{booking.ServiceGutterCleaning, booking.ServiceCommercialWashing},
			ExperienceYears: 7,
			Rating:          4.8,
			Active:          true,
		},
		{
			ID:              "w-carlos",
			Name:            "Carlos Rodriguez",
			Email:           "carlos@gohampro.com",
			Phone:           "+15550103",
			Zone:            booking.ZoneCentral,
			Capabilities:    []booking.ServiceType{booking.ServiceMobileDetailing, booking.ServiceGutterCleaning, booking.ServiceHouseWashing},
			ExperienceYears: 3,
			Rating:          4.7,
			Active:          true,
		},
	}
}

// Package booking holds the domain types shared by the scheduling engine:
// service requests, workers, committed schedule intervals, and the catalog
// of offered services.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceType identifies one of the offered pressure-washing services.
type ServiceType string

const (
	ServiceHouseWashing      ServiceType = "house-washing"
	ServiceMobileDetailing   ServiceType = "mobile-detailing"
	ServiceGutterCleaning    ServiceType = "gutter-cleaning"
	ServiceCommercialWashing ServiceType = "commercial-washing"
	ServiceDrivewayCleaning  ServiceType = "driveway-cleaning"
	ServiceDeckCleaning      ServiceType = "deck-cleaning"
)

// Zone is the coarse service region used for worker eligibility. It stands in
// for real geocoding.
type Zone string

const (
	ZoneNorth   Zone = "north"
	ZoneSouth   Zone = "south"
	ZoneCentral Zone = "central"
	ZoneEast    Zone = "east"
	ZoneWest    Zone = "west"
)

// Request is an immutable customer booking request as submitted.
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	ServiceType   ServiceType
	Date          string // 2006-01-02
	Time          string // 15:04, 24-hour
	Instructions  string
}

// Instant combines Date and Time into a single UTC instant.
func (r Request) Instant() (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", r.Date+" "+r.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking: parse requested date/time: %w", err)
	}
	return t.UTC(), nil
}

// Window returns the half-open [start, end) interval the request occupies,
// using the catalog duration for the requested service.
func (r Request) Window(catalog *Catalog) (start, end time.Time, err error) {
	start, err = r.Instant()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.Add(catalog.Duration(r.ServiceType))
	return start, end, nil
}

// Worker is a field technician able to perform one or more services inside a
// zone. The directory owns these records; this layer reads them only.
type Worker struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Zone            Zone
	Capabilities    []ServiceType
	ExperienceYears int
	Rating          float64 // 0 means unrated
	Active          bool
}

// Handles reports whether the worker covers the given service type, using a
// case-insensitive substring match in either direction so that close variants
// ("house-washing" vs "house-washing-premium") still pair up.
func (w Worker) Handles(st ServiceType) bool {
	want := strings.ToLower(string(st))
	for _, c := range w.Capabilities {
		have := strings.ToLower(string(c))
		if strings.Contains(want, have) || strings.Contains(have, want) {
			return true
		}
	}
	return false
}

// Interval is one committed appointment on a worker's schedule. Travel/setup
// buffer is not stored here; it is applied at comparison time.
type Interval struct {
	ID        string
	WorkerID  string
	BookingID string
	Start     time.Time
	End       time.Time
}

// Day returns the interval's calendar date in UTC.
func (iv Interval) Day() string {
	return iv.Start.UTC().Format(time.DateOnly)
}

// Assigned is a request that has been matched to a worker and committed to
// the schedule.
type Assigned struct {
	BookingID string
	Request   Request
	Worker    Worker
	Start     time.Time
	End       time.Time
}

// NewAssigned builds an Assigned booking with a fresh identifier.
func NewAssigned(req Request, w Worker, start, end time.Time) *Assigned {
	return &Assigned{
		BookingID: uuid.NewString(),
		Request:   req,
		Worker:    w,
		Start:     start,
		End:       end,
	}
}

// Alternative is a (date, time, worker) combination offered to the customer
// when the requested slot has no coverage.
type Alternative struct {
	Date    string
	Time    string
	DayName string
	Worker  Worker
}

// Package scheduling implements the booking pipeline: time-rule validation,
// concurrent availability search, weighted worker selection, alternative-slot
// search, and the orchestrator that ties them to the schedule repository and
// the notification layers.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Supremetechy/go-ham/internal/config"
)

// RuleSet holds the business time rules the validator and the alternative
// finder enforce.
type RuleSet struct {
	MinAdvance       time.Duration
	MaxAdvanceDays   int
	WorkStart        string // "07:00"
	WorkEnd          string // "19:00"
	AllowWeekends    bool
	AllowHolidays    bool
	Holidays         map[string]bool // ISO dates
	BufferMinutes    int
	MaxDailyBookings int
	SlotStepMinutes  int
	AlternativeDays  int
	MaxAlternatives  int
}

// DefaultRules builds the rule set from configuration.
func DefaultRules(cfg *config.Config) RuleSet {
	holidays := make(map[string]bool, len(cfg.HolidayDates))
	for _, d := range cfg.HolidayDates {
		holidays[d] = true
	}
	return RuleSet{
		MinAdvance:       cfg.MinAdvance,
		MaxAdvanceDays:   cfg.MaxAdvanceDays,
		WorkStart:        cfg.WorkStart,
		WorkEnd:          cfg.WorkEnd,
		AllowWeekends:    cfg.AllowWeekends,
		AllowHolidays:    cfg.AllowHolidays,
		Holidays:         holidays,
		BufferMinutes:    cfg.BufferMinutes,
		MaxDailyBookings: cfg.MaxDailyBookings,
		SlotStepMinutes:  cfg.SlotStepMinutes,
		AlternativeDays:  cfg.AlternativeDays,
		MaxAlternatives:  cfg.MaxAlternatives,
	}
}

// Buffer returns the inter-appointment buffer as a duration.
func (r RuleSet) Buffer() time.Duration {
	return time.Duration(r.BufferMinutes) * time.Minute
}

// IsHoliday reports whether the instant falls on a configured holiday.
func (r RuleSet) IsHoliday(t time.Time) bool {
	return r.Holidays[t.UTC().Format(time.DateOnly)]
}

// minuteOfDay parses "15:04" into minutes since midnight.
func minuteOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("scheduling: malformed time of day %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("scheduling: malformed time of day %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("scheduling: malformed time of day %q", s)
	}
	return h*60 + m, nil
}

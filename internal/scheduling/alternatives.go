package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// FindAlternatives searches the days after the requested date for open
// slots, skipping the requested date itself. Slots are generated across the
// working-hours window at the configured step, validated against the time
// rules, and checked for availability; each open slot carries the worker the
// selector would pick. Results come back in day-then-time order, truncated
// to the configured maximum.
func (f *Finder) FindAlternatives(ctx context.Context, req booking.Request, now time.Time) ([]booking.Alternative, error) {
	origin, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, fmt.Errorf("scheduling: parse requested date: %w", err)
	}

	validator := NewValidator(f.rules)
	slots, err := f.daySlots()
	if err != nil {
		return nil, err
	}

	var alts []booking.Alternative
	for i := 0; i < f.rules.AlternativeDays; i++ {
		if i == 0 {
			// The requested date already failed; offer other days.
			continue
		}
		day := origin.AddDate(0, 0, i)

		for _, slot := range slots {
			probe := req
			probe.Date = day.Format(time.DateOnly)
			probe.Time = slot
			if validator.Validate(probe, now) != nil {
				continue
			}
			candidates, err := f.FindAvailable(ctx, probe)
			if err != nil {
				return nil, err
			}
			best, ok := SelectBest(candidates, f.rules)
			if !ok {
				continue
			}
			alts = append(alts, booking.Alternative{
				Date:    probe.Date,
				Time:    slot,
				DayName: day.Weekday().String(),
				Worker:  best.Worker,
			})
			if len(alts) == f.rules.MaxAlternatives {
				return alts, nil
			}
		}
	}
	return alts, nil
}

// daySlots lists slot start times across the working-hours window at the
// configured step.
func (f *Finder) daySlots() ([]string, error) {
	startMin, err := minuteOfDay(f.rules.WorkStart)
	if err != nil {
		return nil, err
	}
	endMin, err := minuteOfDay(f.rules.WorkEnd)
	if err != nil {
		return nil, err
	}
	step := f.rules.SlotStepMinutes
	if step <= 0 {
		step = 30
	}
	var slots []string
	for m := startMin; m < endMin; m += step {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots, nil
}

package scheduling

import (
	"fmt"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
)

// ErrorKind classifies why a request failed validation.
type ErrorKind string

const (
	KindInvalidRequest     ErrorKind = "invalid_request"
	KindTooSoon            ErrorKind = "too_soon"
	KindTooFarOut          ErrorKind = "too_far_out"
	KindOutsideWorkingHour ErrorKind = "outside_working_hours"
	KindWeekendNotAllowed  ErrorKind = "weekend_not_allowed"
	KindHolidayNotAllowed  ErrorKind = "holiday_not_allowed"
)

// ValidationError carries the kind and the customer-facing message for a
// rejected request.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks booking requests against the business time rules. Checks
// run in a fixed order and the first failure wins.
type Validator struct {
	rules RuleSet
}

// NewValidator creates a validator for the given rules.
func NewValidator(rules RuleSet) *Validator {
	return &Validator{rules: rules}
}

// Validate returns nil when the request passes every rule, or a
// *ValidationError naming the first rule it breaks. Order: advance window
// minimum, advance window maximum, working hours, weekend, holiday.
func (v *Validator) Validate(req booking.Request, now time.Time) error {
	at, err := req.Instant()
	if err != nil {
		return &ValidationError{
			Kind:    KindInvalidRequest,
			Message: fmt.Sprintf("Invalid booking date/time %q %q", req.Date, req.Time),
		}
	}

	lead := at.Sub(now)
	if lead < v.rules.MinAdvance {
		return &ValidationError{
			Kind:    KindTooSoon,
			Message: fmt.Sprintf("Booking must be at least %d hours in advance", int(v.rules.MinAdvance.Hours())),
		}
	}

	if lead > time.Duration(v.rules.MaxAdvanceDays)*24*time.Hour {
		return &ValidationError{
			Kind:    KindTooFarOut,
			Message: fmt.Sprintf("Booking cannot be more than %d days in advance", v.rules.MaxAdvanceDays),
		}
	}

	// Working hours form a half-open window: a job may start at opening
	// time but not at closing time.
	reqMin, err := minuteOfDay(req.Time)
	if err != nil {
		return &ValidationError{Kind: KindInvalidRequest, Message: fmt.Sprintf("Invalid booking time %q", req.Time)}
	}
	startMin, err := minuteOfDay(v.rules.WorkStart)
	if err != nil {
		return fmt.Errorf("scheduling: bad working-hours start: %w", err)
	}
	endMin, err := minuteOfDay(v.rules.WorkEnd)
	if err != nil {
		return fmt.Errorf("scheduling: bad working-hours end: %w", err)
	}
	if reqMin < startMin || reqMin >= endMin {
		return &ValidationError{
			Kind:    KindOutsideWorkingHour,
			Message: fmt.Sprintf("Service hours are %s - %s", v.rules.WorkStart, v.rules.WorkEnd),
		}
	}

	if !v.rules.AllowWeekends {
		switch at.Weekday() {
		case time.Saturday, time.Sunday:
			return &ValidationError{
				Kind:    KindWeekendNotAllowed,
				Message: "Weekend bookings are not available",
			}
		}
	}

	if !v.rules.AllowHolidays && v.rules.IsHoliday(at) {
		return &ValidationError{
			Kind:    KindHolidayNotAllowed,
			Message: "Holiday bookings are not available",
		}
	}

	return nil
}

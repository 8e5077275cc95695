package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Supremetechy/go-ham/internal/alerts"
	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/followup"
	"github.com/Supremetechy/go-ham/internal/observability/metrics"
	"github.com/Supremetechy/go-ham/internal/schedule"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

var tracer = otel.Tracer("goham/scheduling")

// Result is the outcome of one scheduling attempt. A rejected or
// unfulfillable request is a Result, not an error; errors are reserved for
// infrastructure failures.
type Result struct {
	Success      bool
	BookingID    string
	Worker       *booking.Worker
	ErrorKind    ErrorKind
	Message      string
	Reason       string
	Alternatives []booking.Alternative
}

// Orchestrator runs the full booking pipeline.
type Orchestrator struct {
	validator  *Validator
	finder     *Finder
	repo       schedule.Repository
	catalog    *booking.Catalog
	dispatcher *alerts.Dispatcher
	followups  *followup.Scheduler
	rules      RuleSet
	metrics    *metrics.SchedulingMetrics
	logger     *logging.Logger
	now        func() time.Time
}

// NewOrchestrator wires the pipeline. A nil now defaults to time.Now.
func NewOrchestrator(
	validator *Validator,
	finder *Finder,
	repo schedule.Repository,
	catalog *booking.Catalog,
	dispatcher *alerts.Dispatcher,
	followups *followup.Scheduler,
	rules RuleSet,
	m *metrics.SchedulingMetrics,
	logger *logging.Logger,
	now func() time.Time,
) *Orchestrator {
	if logger == nil {
		logger = logging.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		validator:  validator,
		finder:     finder,
		repo:       repo,
		catalog:    catalog,
		dispatcher: dispatcher,
		followups:  followups,
		rules:      rules,
		metrics:    m,
		logger:     logger,
		now:        now,
	}
}

// ScheduleBooking validates the request, finds and commits the best worker,
// and fans out notifications and follow-ups. Losing the slot to a concurrent
// booking is not an error: the commit conflict falls through to the
// alternative-slot path exactly like an empty candidate set.
func (o *Orchestrator) ScheduleBooking(ctx context.Context, req booking.Request) (*Result, error) {
	ctx, span := tracer.Start(ctx, "scheduling.schedule_booking")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.service_type", string(req.ServiceType)),
		attribute.String("booking.date", req.Date),
		attribute.String("booking.time", req.Time),
	)

	started := o.now()
	defer func() {
		o.metrics.ObserveLatency(time.Since(started).Seconds())
	}()

	if err := o.validator.Validate(req, started); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			o.metrics.ObserveBooking("rejected")
			o.logger.Info("scheduling: request rejected",
				"kind", verr.Kind, "customer", req.CustomerName, "date", req.Date, "time", req.Time)
			span.SetAttributes(attribute.String("booking.outcome", "rejected"))
			return &Result{Success: false, ErrorKind: verr.Kind, Message: verr.Message}, nil
		}
		return nil, err
	}

	start, end, err := req.Window(o.catalog)
	if err != nil {
		return nil, err
	}

	candidates, err := o.finder.FindAvailable(ctx, req)
	if err != nil {
		o.reportError(ctx, req, err)
		return nil, err
	}

	for len(candidates) > 0 {
		best, _ := SelectBest(candidates, o.rules)

		iv := booking.Interval{
			WorkerID: best.Worker.ID,
			Start:    start,
			End:      end,
		}
		err := o.repo.Commit(ctx, iv)
		if err == nil {
			return o.confirm(ctx, span, req, best.Worker, start, end)
		}
		if !errors.Is(err, schedule.ErrConflict) {
			o.reportError(ctx, req, err)
			return nil, fmt.Errorf("scheduling: commit interval: %w", err)
		}

		// A concurrent booking took the slot. Drop this worker and retry
		// with the rest before giving up on the requested time.
		o.logger.Info("scheduling: lost slot to concurrent booking, retrying",
			"worker", best.Worker.Name, "date", req.Date, "time", req.Time)
		candidates = without(candidates, best.Worker.ID)
	}

	return o.noAvailability(ctx, span, req)
}

// confirm finishes a committed booking: customer confirmation, worker/admin
// fan-out, follow-up sequence. Notification failures are logged; the booking
// stays confirmed.
func (o *Orchestrator) confirm(ctx context.Context, span trace.Span, req booking.Request, w booking.Worker, start, end time.Time) (*Result, error) {
	a := booking.NewAssigned(req, w, start, end)

	o.dispatcher.ConfirmCustomer(ctx, a)
	if _, err := o.dispatcher.Dispatch(ctx, a); err != nil {
		o.logger.Error("scheduling: alert dispatch failed, booking remains confirmed",
			"error", err, "booking_id", a.BookingID)
	}
	o.followups.Schedule(a, o.now())

	o.metrics.ObserveBooking("confirmed")
	o.logger.Info("scheduling: booking confirmed",
		"booking_id", a.BookingID,
		"worker", w.Name,
		"service", req.ServiceType,
		"start", start,
	)
	span.SetAttributes(
		attribute.String("booking.outcome", "confirmed"),
		attribute.String("booking.worker", w.Name),
	)

	return &Result{Success: true, BookingID: a.BookingID, Worker: &w}, nil
}

// noAvailability searches alternatives and notifies customer and admin.
func (o *Orchestrator) noAvailability(ctx context.Context, span trace.Span, req booking.Request) (*Result, error) {
	alts, err := o.finder.FindAlternatives(ctx, req, o.now())
	if err != nil {
		o.reportError(ctx, req, err)
		return nil, err
	}

	o.dispatcher.NotifyAlternatives(ctx, req, alts)

	o.metrics.ObserveBooking("no_availability")
	o.logger.Warn("scheduling: no availability",
		"service", req.ServiceType,
		"date", req.Date,
		"time", req.Time,
		"alternatives", len(alts),
	)
	span.SetAttributes(attribute.String("booking.outcome", "no_availability"))

	return &Result{Success: false, Reason: "no_availability", Alternatives: alts}, nil
}

func (o *Orchestrator) reportError(ctx context.Context, req booking.Request, cause error) {
	o.metrics.ObserveBooking("error")
	o.logger.Error("scheduling: pipeline failure", "error", cause, "customer", req.CustomerName)
	o.dispatcher.ReportError(ctx, req, cause)
}

func without(candidates []Candidate, workerID string) []Candidate {
	out := candidates[:0]
	for _, c := range candidates {
		if c.Worker.ID != workerID {
			out = append(out, c)
		}
	}
	return out
}

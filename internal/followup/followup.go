// Package followup drives the post-booking customer touch sequence: two
// pre-service reminders, a post-service satisfaction survey, and a review
// request. Each task is an independent one-shot timer; none is persisted
// across a restart.
package followup

import (
	"context"
	"sync"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/clock"
	"github.com/Supremetechy/go-ham/internal/notify"
	"github.com/Supremetechy/go-ham/internal/observability/metrics"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

// Kind identifies one step of the follow-up sequence.
type Kind string

const (
	KindReminder24h Kind = "reminder-24h"
	KindReminder2h  Kind = "reminder-2h"
	KindSurvey      Kind = "satisfaction-survey"
	KindReview      Kind = "review-request"
)

// Channel selects the delivery channel(s) for a kind.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelBoth  Channel = "both"
)

// definition fixes a kind's offset from the service start and its channels.
// Negative offsets fire before the service, positive after.
type definition struct {
	kind    Kind
	offset  time.Duration
	channel Channel
	// clampPastDue fires the task immediately instead of skipping it when
	// its nominal time has passed but the service has not started yet. Only
	// the final reminder wants this: a same-morning booking should still get
	// its heads-up, while a stale "tomorrow" reminder should not.
	clampPastDue bool
}

var sequence = []definition{
	{kind: KindReminder24h, offset: -24 * time.Hour, channel: ChannelBoth},
	{kind: KindReminder2h, offset: -2 * time.Hour, channel: ChannelSMS, clampPastDue: true},
	{kind: KindSurvey, offset: 4 * time.Hour, channel: ChannelEmail},
	{kind: KindReview, offset: 24 * time.Hour, channel: ChannelBoth},
}

// Task is one registered follow-up with its cancellation handle.
type Task struct {
	Kind    Kind
	Channel Channel
	FireAt  time.Time

	handle clock.Handle

	mu    sync.Mutex
	fired bool
}

// Cancel stops the task if it has not fired. It reports whether the timer
// was stopped in time.
func (t *Task) Cancel() bool {
	return t.handle.Cancel()
}

// Branding is the company identity rendered into follow-up copy.
type Branding struct {
	CompanyName   string
	CompanyPhone  string
	FeedbackEmail string
	ReviewURL     string
}

// Scheduler registers and fires follow-up tasks for assigned bookings.
type Scheduler struct {
	email   notify.EmailSender
	sms     notify.SMSSender
	clk     clock.Scheduler
	brand   Branding
	metrics *metrics.SchedulingMetrics
	logger  *logging.Logger
}

// NewScheduler creates a follow-up scheduler. A nil clk defaults to the
// system clock.
func NewScheduler(email notify.EmailSender, sms notify.SMSSender, clk clock.Scheduler, brand Branding, m *metrics.SchedulingMetrics, logger *logging.Logger) *Scheduler {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{
		email:   email,
		sms:     sms,
		clk:     clk,
		brand:   brand,
		metrics: m,
		logger:  logger,
	}
}

// Schedule registers one timer per sequence step whose fire time is still in
// the future, relative to now and the booking's service start. Past-due
// steps are skipped, except a past-due final reminder for a service that has
// not started yet, which fires immediately. The returned tasks expose Cancel
// handles; nothing in the booking flow revokes them today.
func (s *Scheduler) Schedule(a *booking.Assigned, now time.Time) []*Task {
	var tasks []*Task
	for _, def := range sequence {
		fireAt := a.Start.Add(def.offset)
		if !fireAt.After(now) {
			if !(def.clampPastDue && a.Start.After(now)) {
				s.metrics.ObserveFollowUp(string(def.kind), "skipped")
				s.logger.Info("followup: skipping past-due task",
					"kind", def.kind,
					"booking_id", a.BookingID,
					"fire_at", fireAt,
				)
				continue
			}
			fireAt = now
		}

		task := &Task{Kind: def.kind, Channel: def.channel, FireAt: fireAt}
		def := def
		task.handle = s.clk.ScheduleAt(fireAt, func() {
			s.fire(task, def, a)
		})
		s.metrics.ObserveFollowUp(string(def.kind), "scheduled")
		tasks = append(tasks, task)
	}
	s.logger.Info("followup: sequence registered",
		"booking_id", a.BookingID,
		"tasks", len(tasks),
	)
	return tasks
}

// fire renders and delivers one task. Failures are logged and counted; they
// never touch sibling tasks, and a task never runs twice.
func (s *Scheduler) fire(t *Task, def definition, a *booking.Assigned) {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	t.mu.Unlock()

	ctx := context.Background()
	msg, smsBody := renderFollowUp(s.brand, def.kind, a)

	ok := true
	if def.channel == ChannelEmail || def.channel == ChannelBoth {
		if err := s.email.Send(ctx, msg); err != nil {
			ok = false
			s.logger.Error("followup: email send failed",
				"kind", def.kind, "booking_id", a.BookingID, "error", err)
		}
	}
	if def.channel == ChannelSMS || def.channel == ChannelBoth {
		if err := s.sms.SendSMS(ctx, a.Request.CustomerPhone, smsBody); err != nil {
			ok = false
			s.logger.Error("followup: SMS send failed",
				"kind", def.kind, "booking_id", a.BookingID, "error", err)
		}
	}

	if ok {
		s.metrics.ObserveFollowUp(string(def.kind), "sent")
		s.logger.Info("followup: task delivered", "kind", def.kind, "booking_id", a.BookingID)
	} else {
		s.metrics.ObserveFollowUp(string(def.kind), "failed")
	}
}

// Package alerts fans out booking notifications to eligible workers, admin,
// and the customer over independent email and SMS channels. One recipient's
// failure never blocks another's send.
package alerts

import (
	"context"
	"sync"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/notify"
	"github.com/Supremetechy/go-ham/internal/observability/metrics"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

// Admin is the escalation contact for urgent and error alerts.
type Admin struct {
	Email string
	Phone string
}

// Directory supplies the worker roster for eligibility filtering.
type Directory interface {
	All(ctx context.Context) ([]booking.Worker, error)
}

// Outcome records the alert result for a single worker. Both channels are
// always attempted; either may fail on its own.
type Outcome struct {
	WorkerID   string
	WorkerName string
	EmailErr   error
	SMSErr     error
}

// Failed reports whether either channel failed for this worker.
func (o Outcome) Failed() bool {
	return o.EmailErr != nil || o.SMSErr != nil
}

// Report summarizes one dispatch run.
type Report struct {
	WorkersNotified int
	Outcomes        []Outcome
	PartialFailures int
	AdminNotified   bool
}

// Dispatcher sends booking alerts. All sends for one booking run
// concurrently and are joined before Dispatch returns; individual failures
// are recorded, never propagated as a batch failure.
type Dispatcher struct {
	email   notify.EmailSender
	sms     notify.SMSSender
	dir     Directory
	admin   Admin
	brand   Branding
	log     Log
	metrics *metrics.SchedulingMetrics
	logger  *logging.Logger
}

// NewDispatcher creates an alert dispatcher.
func NewDispatcher(email notify.EmailSender, sms notify.SMSSender, dir Directory, admin Admin, brand Branding, log Log, m *metrics.SchedulingMetrics, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	if log == nil {
		log = NopLog{}
	}
	return &Dispatcher{
		email:   email,
		sms:     sms,
		dir:     dir,
		admin:   admin,
		brand:   brand,
		log:     log,
		metrics: m,
		logger:  logger,
	}
}

// EligibleWorkers returns every active worker whose capabilities cover the
// requested service and whose zone covers the address. This is a broader set
// than the single assigned worker: all of them are alerted for awareness and
// backup.
func (d *Dispatcher) EligibleWorkers(ctx context.Context, req booking.Request) ([]booking.Worker, error) {
	all, err := d.dir.All(ctx)
	if err != nil {
		return nil, err
	}
	var eligible []booking.Worker
	for _, w := range all {
		if w.Active && w.Handles(req.ServiceType) && InZone(req.Address, w.Zone) {
			eligible = append(eligible, w)
		}
	}
	return eligible, nil
}

// Dispatch alerts all eligible workers (email + SMS each) and sends the
// admin summary, everything concurrently. With zero eligible workers it
// takes a distinct path: an urgent no-coverage alert to admin over both
// channels.
func (d *Dispatcher) Dispatch(ctx context.Context, a *booking.Assigned) (*Report, error) {
	eligible, err := d.EligibleWorkers(ctx, a.Request)
	if err != nil {
		return nil, err
	}

	if len(eligible) == 0 {
		d.logger.Warn("alerts: no eligible workers for booking", "booking_id", a.BookingID)
		d.sendNoCoverage(ctx, a.Request)
		report := &Report{WorkersNotified: 0, AdminNotified: true}
		d.appendLog(ctx, a, nil, "no_coverage")
		return report, nil
	}

	outcomes := make([]Outcome, len(eligible))
	var wg sync.WaitGroup

	for i, w := range eligible {
		wg.Add(1)
		go func(i int, w booking.Worker) {
			defer wg.Done()
			outcomes[i] = d.alertWorker(ctx, w, a)
		}(i, w)
	}

	adminNotified := true
	wg.Add(1)
	go func() {
		defer wg.Done()
		msg := adminSummaryEmail(d.brand, d.admin, a, len(eligible))
		if err := d.email.Send(ctx, msg); err != nil {
			adminNotified = false
			d.metrics.ObserveNotification("email", false)
			d.logger.Error("alerts: admin summary failed", "error", err, "booking_id", a.BookingID)
			return
		}
		d.metrics.ObserveNotification("email", true)
	}()

	wg.Wait()

	report := &Report{
		WorkersNotified: len(eligible),
		Outcomes:        outcomes,
		AdminNotified:   adminNotified,
	}
	for _, o := range outcomes {
		if o.Failed() {
			report.PartialFailures++
		}
	}
	if report.PartialFailures > 0 {
		d.logger.Warn("alerts: dispatch completed with partial failures",
			"booking_id", a.BookingID,
			"workers", len(eligible),
			"partial_failures", report.PartialFailures,
		)
	} else {
		d.logger.Info("alerts: dispatch complete", "booking_id", a.BookingID, "workers", len(eligible))
	}

	d.appendLog(ctx, a, eligible, "sent")
	return report, nil
}

// alertWorker sends email and SMS to one worker concurrently. Both channels
// are attempted regardless of the other's result.
func (d *Dispatcher) alertWorker(ctx context.Context, w booking.Worker, a *booking.Assigned) Outcome {
	out := Outcome{WorkerID: w.ID, WorkerName: w.Name}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.EmailErr = d.email.Send(ctx, workerAlertEmail(d.brand, w, a))
		d.metrics.ObserveNotification("email", out.EmailErr == nil)
	}()
	go func() {
		defer wg.Done()
		out.SMSErr = d.sms.SendSMS(ctx, w.Phone, workerAlertSMS(d.brand, w, a))
		d.metrics.ObserveNotification("sms", out.SMSErr == nil)
	}()
	wg.Wait()

	if out.Failed() {
		d.logger.Error("alerts: worker alert failed",
			"worker", w.Name,
			"email_error", out.EmailErr,
			"sms_error", out.SMSErr,
		)
	}
	return out
}

// ConfirmCustomer sends the booking confirmation to the customer over both
// channels concurrently. Failures are logged per channel.
func (d *Dispatcher) ConfirmCustomer(ctx context.Context, a *booking.Assigned) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := d.email.Send(ctx, customerConfirmationEmail(d.brand, a))
		d.metrics.ObserveNotification("email", err == nil)
		if err != nil {
			d.logger.Error("alerts: customer confirmation email failed", "error", err, "booking_id", a.BookingID)
		}
	}()
	go func() {
		defer wg.Done()
		err := d.sms.SendSMS(ctx, a.Request.CustomerPhone, customerConfirmationSMS(d.brand, a))
		d.metrics.ObserveNotification("sms", err == nil)
		if err != nil {
			d.logger.Error("alerts: customer confirmation SMS failed", "error", err, "booking_id", a.BookingID)
		}
	}()
	wg.Wait()
}

// NotifyAlternatives tells the customer about alternative slots and
// escalates the no-availability situation to admin.
func (d *Dispatcher) NotifyAlternatives(ctx context.Context, req booking.Request, alts []booking.Alternative) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		err := d.email.Send(ctx, alternativesEmail(d.brand, req, alts))
		d.metrics.ObserveNotification("email", err == nil)
		if err != nil {
			d.logger.Error("alerts: alternatives email failed", "error", err, "customer", req.CustomerEmail)
		}
	}()
	go func() {
		defer wg.Done()
		err := d.sms.SendSMS(ctx, req.CustomerPhone, alternativesSMS(d.brand, req, len(alts)))
		d.metrics.ObserveNotification("sms", err == nil)
		if err != nil {
			d.logger.Error("alerts: alternatives SMS failed", "error", err, "customer", req.CustomerPhone)
		}
	}()
	go func() {
		defer wg.Done()
		d.sendNoCoverage(ctx, req)
	}()
	wg.Wait()
}

// ReportError sends a best-effort error alert to admin over both channels.
// Its own failures are logged, never returned: this is the last line of
// defense, operational failures must not be silent.
func (d *Dispatcher) ReportError(ctx context.Context, req booking.Request, cause error) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := d.email.Send(ctx, errorAlertEmail(d.admin, req, cause)); err != nil {
			d.logger.Error("alerts: error alert email failed", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := d.sms.SendSMS(ctx, d.admin.Phone, errorAlertSMS(req)); err != nil {
			d.logger.Error("alerts: error alert SMS failed", "error", err)
		}
	}()
	wg.Wait()
}

func (d *Dispatcher) sendNoCoverage(ctx context.Context, req booking.Request) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := d.email.Send(ctx, noCoverageEmail(d.admin, req)); err != nil {
			d.logger.Error("alerts: no-coverage email failed", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := d.sms.SendSMS(ctx, d.admin.Phone, noCoverageSMS(req)); err != nil {
			d.logger.Error("alerts: no-coverage SMS failed", "error", err)
		}
	}()
	wg.Wait()
}

func (d *Dispatcher) appendLog(ctx context.Context, a *booking.Assigned, notified []booking.Worker, status string) {
	names := make([]string, len(notified))
	for i, w := range notified {
		names[i] = w.Name
	}
	entry := Entry{
		Timestamp:       time.Now().UTC(),
		BookingID:       a.BookingID,
		Service:         string(a.Request.ServiceType),
		Customer:        a.Request.CustomerName,
		WorkersNotified: names,
		Status:          status,
	}
	if err := d.log.Append(ctx, entry); err != nil {
		d.logger.Error("alerts: failed to record alert log entry", "error", err, "booking_id", a.BookingID)
	}
}

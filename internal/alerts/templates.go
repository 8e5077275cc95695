package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/notify"
)

// Branding carries the company identity injected into outbound copy.
type Branding struct {
	CompanyName  string
	CompanyPhone string
}

func workerAlertEmail(b Branding, w booking.Worker, a *booking.Assigned) notify.EmailMessage {
	req := a.Request
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s! You have a new service request.\n\n", w.Name)
	fmt.Fprintf(&sb, "Service: %s\n", req.ServiceType)
	fmt.Fprintf(&sb, "Customer: %s\n", req.CustomerName)
	fmt.Fprintf(&sb, "Date: %s at %s\n", req.Date, req.Time)
	fmt.Fprintf(&sb, "Phone: %s\n", req.CustomerPhone)
	fmt.Fprintf(&sb, "Email: %s\n", req.CustomerEmail)
	fmt.Fprintf(&sb, "Address: %s\n", req.Address)
	if req.Instructions != "" {
		fmt.Fprintf(&sb, "Special instructions: %s\n", req.Instructions)
	}
	sb.WriteString("\nRESPOND WITHIN 15 MINUTES TO SECURE THIS JOB.\n")
	sb.WriteString("Contact the customer to confirm, and notify admin immediately if unavailable.\n\n")
	fmt.Fprintf(&sb, "Booking ID: %s\n— %s", a.BookingID, b.CompanyName)

	return notify.EmailMessage{
		To:      w.Email,
		ToName:  w.Name,
		Subject: fmt.Sprintf("🔔 URGENT: New %s Booking", req.ServiceType),
		Body:    sb.String(),
	}
}

func workerAlertSMS(b Branding, w booking.Worker, a *booking.Assigned) string {
	req := a.Request
	return fmt.Sprintf("🔔 NEW JOB ALERT! Hi %s, you have a new %s booking.\n\nCustomer: %s\nDate: %s at %s\nLocation: %s\nPhone: %s\n\nRESPOND IN 15 MIN! Call customer to confirm.\n\n- %s",
		w.Name, req.ServiceType, req.CustomerName, req.Date, req.Time, req.Address, req.CustomerPhone, b.CompanyName)
}

func adminSummaryEmail(b Branding, admin Admin, a *booking.Assigned, workersNotified int) notify.EmailMessage {
	req := a.Request
	var sb strings.Builder
	sb.WriteString("Booking Summary\n\n")
	fmt.Fprintf(&sb, "Service: %s\n", req.ServiceType)
	fmt.Fprintf(&sb, "Customer: %s\n", req.CustomerName)
	fmt.Fprintf(&sb, "Contact: %s | %s\n", req.CustomerPhone, req.CustomerEmail)
	fmt.Fprintf(&sb, "Date & Time: %s at %s\n", req.Date, req.Time)
	fmt.Fprintf(&sb, "Address: %s\n", req.Address)
	fmt.Fprintf(&sb, "Assigned worker: %s\n", a.Worker.Name)
	fmt.Fprintf(&sb, "Workers notified: %d (email + SMS)\n\n", workersNotified)
	sb.WriteString("Follow-up: monitor worker response (15-minute window) and assign a backup if needed.\n")

	return notify.EmailMessage{
		To:      admin.Email,
		Subject: fmt.Sprintf("📋 New Booking: %s - %s", req.ServiceType, req.CustomerName),
		Body:    sb.String(),
	}
}

func customerConfirmationEmail(b Branding, a *booking.Assigned) notify.EmailMessage {
	req := a.Request
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nYour %s service is confirmed!\n\n", req.CustomerName, req.ServiceType)
	fmt.Fprintf(&sb, "Date: %s\nTime: %s\nAddress: %s\n", req.Date, req.Time, req.Address)
	fmt.Fprintf(&sb, "Your technician: %s", a.Worker.Name)
	if a.Worker.Rating > 0 {
		fmt.Fprintf(&sb, " (%.1f★ rating)", a.Worker.Rating)
	}
	fmt.Fprintf(&sb, "\n\nQuestions? Call us at %s.\n\n— %s", b.CompanyPhone, b.CompanyName)

	return notify.EmailMessage{
		To:      req.CustomerEmail,
		ToName:  req.CustomerName,
		Subject: fmt.Sprintf("✅ Booking Confirmed - %s on %s", req.ServiceType, req.Date),
		Body:    sb.String(),
	}
}

func customerConfirmationSMS(b Branding, a *booking.Assigned) string {
	req := a.Request
	return fmt.Sprintf("✅ Confirmed: %s on %s at %s with %s. Questions? Call %s - %s",
		req.ServiceType, req.Date, req.Time, a.Worker.Name, b.CompanyPhone, b.CompanyName)
}

func noCoverageEmail(admin Admin, req booking.Request) notify.EmailMessage {
	var sb strings.Builder
	sb.WriteString("Immediate manual assignment required.\n\n")
	sb.WriteString("Issue: No workers available for this service/location\n")
	fmt.Fprintf(&sb, "Customer: %s\n", req.CustomerName)
	fmt.Fprintf(&sb, "Service: %s\n", req.ServiceType)
	fmt.Fprintf(&sb, "Date: %s at %s\n", req.Date, req.Time)
	fmt.Fprintf(&sb, "Location: %s\n\n", req.Address)
	sb.WriteString("ACTION REQUIRED: manually assign a worker or contact the customer to reschedule.\n")

	return notify.EmailMessage{
		To:      admin.Email,
		Subject: "🚨 URGENT: No Workers Available for Booking",
		Body:    sb.String(),
	}
}

func noCoverageSMS(req booking.Request) string {
	return fmt.Sprintf("🚨 URGENT: No workers available for %s booking. Customer: %s (%s). Manual assignment needed ASAP.",
		req.ServiceType, req.CustomerName, req.CustomerPhone)
}

func alternativesEmail(b Branding, req booking.Request, alts []booking.Alternative) notify.EmailMessage {
	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n", req.CustomerName)
	fmt.Fprintf(&text, "Unfortunately, your requested time slot (%s at %s) is not available.\n", req.Date, req.Time)
	text.WriteString("However, we found these excellent alternatives:\n\n")
	for _, alt := range alts {
		fmt.Fprintf(&text, "  %s, %s at %s — %s", alt.DayName, alt.Date, alt.Time, alt.Worker.Name)
		if alt.Worker.Rating > 0 {
			fmt.Fprintf(&text, " (%.1f★ rating)", alt.Worker.Rating)
		}
		text.WriteString("\n")
	}
	fmt.Fprintf(&text, "\nTo book one of these slots, reply to this email or call us at %s.\n\n— %s",
		b.CompanyPhone, b.CompanyName)

	var html strings.Builder
	html.WriteString(`<div style="font-family: sans-serif; max-width: 600px;">`)
	html.WriteString("<h2>⏰ Alternative Time Slots Available</h2>")
	fmt.Fprintf(&html, "<p>Hi %s, your requested slot (%s at %s) is not available. We found these alternatives:</p>",
		req.CustomerName, req.Date, req.Time)
	for _, alt := range alts {
		fmt.Fprintf(&html, `<div style="border: 1px solid #10b981; border-radius: 8px; padding: 12px; margin: 8px 0;"><strong>%s, %s</strong><br>Time: %s<br>Worker: %s`,
			alt.DayName, alt.Date, alt.Time, alt.Worker.Name)
		if alt.Worker.Rating > 0 {
			fmt.Fprintf(&html, " (%.1f★)", alt.Worker.Rating)
		}
		html.WriteString("</div>")
	}
	fmt.Fprintf(&html, "<p>To book, reply to this email or call %s.</p></div>", b.CompanyPhone)

	return notify.EmailMessage{
		To:      req.CustomerEmail,
		ToName:  req.CustomerName,
		Subject: fmt.Sprintf("Alternative Time Slots Available - %s", b.CompanyName),
		Body:    text.String(),
		HTML:    html.String(),
	}
}

func alternativesSMS(b Branding, req booking.Request, count int) string {
	return fmt.Sprintf("Hi %s, your requested time isn't available. We found %d alternative slots. Check your email for details or call %s.",
		req.CustomerName, count, b.CompanyPhone)
}

func errorAlertEmail(admin Admin, req booking.Request, cause error) notify.EmailMessage {
	var sb strings.Builder
	sb.WriteString("Critical scheduling failure - immediate attention required.\n\n")
	fmt.Fprintf(&sb, "Error time: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "Error: %v\n", cause)
	fmt.Fprintf(&sb, "Affected booking: %s\n", req.CustomerName)
	fmt.Fprintf(&sb, "Service: %s\n", req.ServiceType)

	return notify.EmailMessage{
		To:      admin.Email,
		Subject: "🚨 Scheduling Error - Immediate Attention Required",
		Body:    sb.String(),
	}
}

func errorAlertSMS(req booking.Request) string {
	return fmt.Sprintf("🚨 SCHEDULING ERROR: Failed to process booking notification. Booking: %s - %s. Check email immediately.",
		req.CustomerName, req.ServiceType)
}

package followup

import (
	"fmt"
	"strings"

	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/notify"
)

// renderFollowUp builds the email message and SMS body for a kind. Callers
// use whichever the kind's channel selects.
func renderFollowUp(b Branding, kind Kind, a *booking.Assigned) (notify.EmailMessage, string) {
	switch kind {
	case KindReminder24h:
		return reminder24hEmail(b, a), reminder24hSMS(b, a)
	case KindReminder2h:
		return notify.EmailMessage{}, reminder2hSMS(b, a)
	case KindSurvey:
		return surveyEmail(b, a), ""
	case KindReview:
		return reviewEmail(b, a), reviewSMS(b, a)
	}
	return notify.EmailMessage{}, ""
}

func reminder24hEmail(b Branding, a *booking.Assigned) notify.EmailMessage {
	req := a.Request
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", req.CustomerName)
	fmt.Fprintf(&sb, "This is a friendly reminder that your %s service is scheduled for tomorrow:\n\n", req.ServiceType)
	fmt.Fprintf(&sb, "Date: %s\nTime: %s\nTechnician: %s\nContact: %s\n\n",
		req.Date, req.Time, a.Worker.Name, a.Worker.Phone)
	fmt.Fprintf(&sb, "Please ensure someone is available at the property. If you need to reschedule, call us at %s.\n\n— %s",
		b.CompanyPhone, b.CompanyName)

	return notify.EmailMessage{
		To:      req.CustomerEmail,
		ToName:  req.CustomerName,
		Subject: "🔔 Service Reminder - Tomorrow at " + req.Time,
		Body:    sb.String(),
	}
}

func reminder24hSMS(b Branding, a *booking.Assigned) string {
	req := a.Request
	return fmt.Sprintf("Reminder: %s service tomorrow at %s with %s. Questions? Call %s",
		req.ServiceType, req.Time, a.Worker.Name, b.CompanyPhone)
}

func reminder2hSMS(b Branding, a *booking.Assigned) string {
	req := a.Request
	return fmt.Sprintf("⏰ Final reminder: Your %s service with %s is coming up. We'll be there at %s! - %s",
		req.ServiceType, a.Worker.Name, req.Time, b.CompanyName)
}

func surveyEmail(b Branding, a *booking.Assigned) notify.EmailMessage {
	req := a.Request
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", req.CustomerName)
	fmt.Fprintf(&sb, "Thank you for choosing %s! We hope you're satisfied with the %s service provided by %s.\n\n",
		b.CompanyName, req.ServiceType, a.Worker.Name)
	sb.WriteString("Rate your experience by replying with a subject line:\n")
	fmt.Fprintf(&sb, "  ⭐⭐⭐⭐⭐ Excellent Service - %s\n", a.BookingID)
	fmt.Fprintf(&sb, "  ⭐⭐⭐⭐ Good Service - %s\n", a.BookingID)
	fmt.Fprintf(&sb, "  ⭐⭐⭐ Needs Improvement - %s\n\n", a.BookingID)
	fmt.Fprintf(&sb, "Or email us directly at %s. Your feedback helps us maintain our high standards!\n\n— %s",
		b.FeedbackEmail, b.CompanyName)

	return notify.EmailMessage{
		To:      req.CustomerEmail,
		ToName:  req.CustomerName,
		Subject: fmt.Sprintf("💙 How was your %s service?", b.CompanyName),
		Body:    sb.String(),
	}
}

func reviewEmail(b Branding, a *booking.Assigned) notify.EmailMessage {
	req := a.Request
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", req.CustomerName)
	fmt.Fprintf(&sb, "We're grateful you chose %s for your %s needs!\n\n", b.CompanyName, req.ServiceType)
	fmt.Fprintf(&sb, "If you were satisfied with %s's service, would you mind sharing your experience with others?\n\n", a.Worker.Name)
	fmt.Fprintf(&sb, "Leave a review: %s\n\n", b.ReviewURL)
	fmt.Fprintf(&sb, "As a thank you, mention this email for 10%% off your next service!\n\n— %s", b.CompanyName)

	return notify.EmailMessage{
		To:      req.CustomerEmail,
		ToName:  req.CustomerName,
		Subject: fmt.Sprintf("🌟 Share your %s experience + 10%% off next service!", b.CompanyName),
		Body:    sb.String(),
	}
}

func reviewSMS(b Branding, a *booking.Assigned) string {
	return fmt.Sprintf("Thanks for choosing %s! If you loved %s's service, please leave us a review for 10%% off next time: %s",
		b.CompanyName, a.Worker.Name, b.ReviewURL)
}

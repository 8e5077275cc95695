package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supremetechy/go-ham/internal/alerts"
	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/clock"
	"github.com/Supremetechy/go-ham/internal/followup"
	"github.com/Supremetechy/go-ham/internal/notify"
	"github.com/Supremetechy/go-ham/internal/schedule"
	"github.com/Supremetechy/go-ham/internal/scheduling"
	"github.com/Supremetechy/go-ham/internal/workers"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()

	rules := scheduling.RuleSet{
		MinAdvance:       4 * time.Hour,
		MaxAdvanceDays:   30,
		WorkStart:        "07:00",
		WorkEnd:          "19:00",
		AllowWeekends:    true,
		Holidays:         map[string]bool{},
		BufferMinutes:    30,
		MaxDailyBookings: 6,
		SlotStepMinutes:  30,
		AlternativeDays:  7,
		MaxAlternatives:  5,
	}
	email := notify.NewStubEmailSender(nil)
	sms := notify.NewStubSMSSender(nil)
	dir := workers.NewMemoryDirectory(workers.DefaultRoster())
	repo := schedule.NewMemoryStore(rules.BufferMinutes, rules.MaxDailyBookings)
	catalog := booking.DefaultCatalog()

	dispatcher := alerts.NewDispatcher(email, sms, dir,
		alerts.Admin{Email: "admin@gohampro.com", Phone: "+15550100"},
		alerts.Branding{CompanyName: "GO HAM PRO", CompanyPhone: "(555) 123-4567"},
		nil, nil, nil)
	followups := followup.NewScheduler(email, sms, clock.NewManual(time.Now()),
		followup.Branding{CompanyName: "GO HAM PRO"}, nil, nil)
	finder := scheduling.NewFinder(dir, repo, catalog, scheduling.FixedDistanceProvider(10), rules, nil)
	orch := scheduling.NewOrchestrator(scheduling.NewValidator(rules), finder, repo, catalog,
		dispatcher, followups, rules, nil, nil, nil)

	return New(&Config{
		BookingHandler: scheduling.NewHandler(orch, nil),
		AlertLog:       alerts.NewHandler(alerts.NopLog{}, nil),
	})
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateBooking(t *testing.T) {
	srv := testServer(t)

	date := time.Now().UTC().AddDate(0, 0, 3).Format(time.DateOnly)
	body := `{
		"customer_name": "Jane Smith",
		"customer_email": "jane@example.com",
		"customer_phone": "+15550150",
		"address": "42 North Highland Ave",
		"service_type": "house-washing",
		"date": "` + date + `",
		"time": "10:00"
	}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["booking_id"])
	assert.NotEmpty(t, resp["worker"])
}

func TestCreateBookingRejectsOutsideHours(t *testing.T) {
	srv := testServer(t)

	date := time.Now().UTC().AddDate(0, 0, 3).Format(time.DateOnly)
	body := `{"customer_name":"Jane","service_type":"house-washing","date":"` + date + `","time":"22:00"}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "outside_working_hours", resp["error_kind"])
}

func TestCreateBookingBadJSON(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{nope")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlertLogEndpoint(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts/log", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Entries []alerts.Entry `json:"entries"`
		Count   int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

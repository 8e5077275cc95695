package scheduling

import (
	"encoding/json"
	"net/http"

	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

// Handler handles HTTP requests for bookings.
type Handler struct {
	orch   *Orchestrator
	logger *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(orch *Orchestrator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{orch: orch, logger: logger}
}

// CreateBookingRequest is the POST /bookings payload.
type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	ServiceType   string `json:"service_type"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Instructions  string `json:"instructions,omitempty"`
}

// BookingResponse mirrors the scheduling Result on the wire.
type BookingResponse struct {
	Success      bool                  `json:"success"`
	BookingID    string                `json:"booking_id,omitempty"`
	Worker       string                `json:"worker,omitempty"`
	ErrorKind    string                `json:"error_kind,omitempty"`
	Message      string                `json:"message,omitempty"`
	Reason       string                `json:"reason,omitempty"`
	Alternatives []AlternativeResponse `json:"alternatives,omitempty"`
}

// AlternativeResponse is one offered slot.
type AlternativeResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	DayName string `json:"day_name"`
	Worker  string `json:"worker"`
}

// CreateBooking handles POST /bookings requests.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.orch.ScheduleBooking(r.Context(), booking.Request{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		ServiceType:   booking.ServiceType(req.ServiceType),
		Date:          req.Date,
		Time:          req.Time,
		Instructions:  req.Instructions,
	})
	if err != nil {
		h.logger.Error("scheduling pipeline failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := BookingResponse{
		Success:   result.Success,
		BookingID: result.BookingID,
		ErrorKind: string(result.ErrorKind),
		Message:   result.Message,
		Reason:    result.Reason,
	}
	if result.Worker != nil {
		resp.Worker = result.Worker.Name
	}
	for _, alt := range result.Alternatives {
		resp.Alternatives = append(resp.Alternatives, AlternativeResponse{
			Date:    alt.Date,
			Time:    alt.Time,
			DayName: alt.DayName,
			Worker:  alt.Worker.Name,
		})
	}

	status := http.StatusCreated
	switch {
	case result.ErrorKind != "":
		status = http.StatusUnprocessableEntity
	case result.Reason == "no_availability":
		status = http.StatusConflict
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

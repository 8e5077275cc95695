package alerts

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Supremetechy/go-ham/pkg/logging"
)

// Handler exposes the alert audit trail over HTTP.
type Handler struct {
	log    Log
	logger *logging.Logger
}

// NewHandler creates an alert log handler.
func NewHandler(log Log, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{log: log, logger: logger}
}

// RecentEntries handles GET /alerts/log requests.
func (h *Handler) RecentEntries(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.log.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to read alert log", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health. With a database configured it also pings it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Success:   false,
				Message:   "database unavailable",
				Timestamp: time.Now().UTC(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "API is running",
		Timestamp: time.Now().UTC(),
	})
}

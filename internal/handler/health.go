package handler

import (
	"net/http"
)

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logFromRequest(r).Warn("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Success: false,
			Status:  "unhealthy",
			Message: "database unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Success: true,
		Status:  "ok",
		Message: "Guru Software Solutions API",
	})
}

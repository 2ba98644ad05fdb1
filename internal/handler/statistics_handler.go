package handler

import (
	"net/http"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/service"
)

// StatisticsHandler serves the admin dashboard counters.
type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

type statisticsResponse struct {
	Success    bool              `json:"success"`
	Statistics *model.Statistics `json:"statistics"`
}

// Get handles GET /api/statistics.
func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statisticsResponse{Success: true, Statistics: stats})
}

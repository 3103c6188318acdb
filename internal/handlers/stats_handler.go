package handlers

import (
	"net/http"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/service"
)

type statsResponse struct {
	Success bool         `json:"success"`
	Stats   models.Stats `json:"stats"`
}

type StatsHandler struct {
	service *service.StatsService
	Responder
}

func NewStatsHandler(service *service.StatsService, rs Responder) *StatsHandler {
	return &StatsHandler{service: service, Responder: rs}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.Fail(w, r, err, "Failed to fetch stats")
		return
	}
	h.JSON(w, http.StatusOK, statsResponse{Success: true, Stats: stats})
}

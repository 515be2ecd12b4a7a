package handler

import (
	"net/http"

	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetMetrics godoc
// @Summary Get dashboard metrics
// @Description Content counts, unread messages, recent messages and recent admin activity
// @Tags Admin Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.GetMetrics(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "get dashboard metrics")
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

package handler

import (
	"net/http"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService *service.SiteSettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SiteSettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetPublic godoc
// @Summary Get public company information
// @Tags Public
// @Produce json
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} domain.PublicSettingsDTO
// @Router /settings [get]
func (h *SettingsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetPublic(r.Context(), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "get settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// Get godoc
// @Summary Get site settings
// @Tags Admin Settings
// @Produce json
// @Success 200 {object} domain.SiteSettingsDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "get settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// Update godoc
// @Summary Update site settings
// @Tags Admin Settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateSiteSettingsRequest true "Settings"
// @Success 200 {object} domain.SiteSettingsDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSiteSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	settings, err := h.settingsService.Update(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

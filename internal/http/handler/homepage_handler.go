package handler

import (
	"net/http"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type HomepageHandler struct {
	homepageService *service.HomepageService
	logger          *zap.Logger
}

func NewHomepageHandler(homepageService *service.HomepageService, logger *zap.Logger) *HomepageHandler {
	return &HomepageHandler{
		homepageService: homepageService,
		logger:          logger,
	}
}

// Resolve godoc
// @Summary Get the resolved homepage
// @Description Curated sections in display order. Sections with nothing curated fall back to defaults.
// @Tags Public
// @Produce json
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} domain.HomepageDTO
// @Router /homepage [get]
func (h *HomepageHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	page, err := h.homepageService.Resolve(r.Context(), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "resolve homepage")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// ListSection godoc
// @Summary List curated items of a homepage section
// @Tags Admin Homepage
// @Produce json
// @Param section query string true "Section" Enums(products, categories, blog, countries)
// @Success 200 {array} domain.HomepageItemDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/homepage [get]
func (h *HomepageHandler) ListSection(w http.ResponseWriter, r *http.Request) {
	section := domain.HomepageSection(r.URL.Query().Get("section"))
	items, err := h.homepageService.ListSection(r.Context(), section)
	if err != nil {
		respondServiceError(w, h.logger, err, "list homepage section")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Add godoc
// @Summary Add an entity to a homepage section
// @Description The item is appended after the current last item
// @Tags Admin Homepage
// @Accept json
// @Produce json
// @Param request body domain.AddHomepageItemRequest true "Item"
// @Success 201 {object} domain.HomepageItemDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError "Already curated"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/homepage [post]
func (h *HomepageHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.AddHomepageItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.homepageService.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add homepage item")
		return
	}
	setLocation(w, r, item.ID)
	respondJSON(w, http.StatusCreated, item)
}

// Remove godoc
// @Summary Remove an item from the homepage
// @Tags Admin Homepage
// @Param id path string true "Homepage item ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/homepage/{id} [delete]
func (h *HomepageHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "homepage item")
	if !ok {
		return
	}
	if err := h.homepageService.Remove(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "remove homepage item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder a homepage section
// @Description ids must list every item of the section exactly once; position becomes display order
// @Tags Admin Homepage
// @Accept json
// @Produce json
// @Param request body domain.ReorderHomepageRequest true "New order"
// @Success 200 {array} domain.HomepageItemDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/homepage/reorder [put]
func (h *HomepageHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderHomepageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	items, err := h.homepageService.Reorder(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "reorder homepage section")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

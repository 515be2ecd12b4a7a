package handler

import (
	"net/http"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type ExportCountryHandler struct {
	countryService *service.ExportCountryService
	logger         *zap.Logger
}

func NewExportCountryHandler(countryService *service.ExportCountryService, logger *zap.Logger) *ExportCountryHandler {
	return &ExportCountryHandler{
		countryService: countryService,
		logger:         logger,
	}
}

// ListPublic godoc
// @Summary List active export countries
// @Tags Public
// @Produce json
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {array} domain.PublicCountryDTO
// @Router /countries [get]
func (h *ExportCountryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	countries, err := h.countryService.ListPublic(r.Context(), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list countries")
		return
	}
	respondJSON(w, http.StatusOK, countries)
}

// List godoc
// @Summary List export countries
// @Tags Admin Countries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name or code"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ExportCountryDTO}
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/countries [get]
func (h *ExportCountryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	result, err := h.countryService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSortConfig(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list countries")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get an export country
// @Tags Admin Countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} domain.ExportCountryDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/countries/{id} [get]
func (h *ExportCountryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "country")
	if !ok {
		return
	}
	country, err := h.countryService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get country")
		return
	}
	respondJSON(w, http.StatusOK, country)
}

// Create godoc
// @Summary Create an export country
// @Description code is an ISO 3166-1 alpha-2 code, stored upper-case
// @Tags Admin Countries
// @Accept json
// @Produce json
// @Param request body domain.ExportCountryRequest true "Country"
// @Success 201 {object} domain.ExportCountryDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/countries [post]
func (h *ExportCountryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ExportCountryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	country, err := h.countryService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create country")
		return
	}
	setLocation(w, r, country.ID)
	respondJSON(w, http.StatusCreated, country)
}

// Update godoc
// @Summary Update an export country
// @Tags Admin Countries
// @Accept json
// @Produce json
// @Param id path string true "Country ID"
// @Param request body domain.ExportCountryRequest true "Country"
// @Success 200 {object} domain.ExportCountryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/countries/{id} [put]
func (h *ExportCountryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "country")
	if !ok {
		return
	}
	var req domain.ExportCountryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	country, err := h.countryService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update country")
		return
	}
	respondJSON(w, http.StatusOK, country)
}

// Delete godoc
// @Summary Delete an export country
// @Tags Admin Countries
// @Param id path string true "Country ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/countries/{id} [delete]
func (h *ExportCountryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "country")
	if !ok {
		return
	}
	if err := h.countryService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete country")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// ListPublic godoc
// @Summary List active categories
// @Tags Public
// @Produce json
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {array} domain.PublicCategoryDTO
// @Failure 500 {object} domain.APIError
// @Router /categories [get]
func (h *CategoryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListPublic(r.Context(), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// GetPublic godoc
// @Summary Get an active category by slug
// @Tags Public
// @Produce json
// @Param slug path string true "Category slug"
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} domain.PublicCategoryDTO
// @Failure 404 {object} domain.APIError
// @Router /categories/{slug} [get]
func (h *CategoryHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetPublicBySlug(r.Context(), chi.URLParam(r, "slug"), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "get category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// List godoc
// @Summary List categories
// @Tags Admin Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name or slug"
// @Param sortBy query string false "Sort field" Enums(name, slug, sortOrder, createdAt, updatedAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CategoryDTO}
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	result, err := h.categoryService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSortConfig(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list categories")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a category
// @Tags Admin Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.CategoryDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/categories/{id} [get]
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "category")
	if !ok {
		return
	}
	category, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// Create godoc
// @Summary Create a category
// @Description The slug is derived from the English name when omitted
// @Tags Admin Categories
// @Accept json
// @Produce json
// @Param request body domain.CategoryRequest true "Category"
// @Success 201 {object} domain.CategoryDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := h.categoryService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create category")
		return
	}
	setLocation(w, r, category.ID)
	respondJSON(w, http.StatusCreated, category)
}

// Update godoc
// @Summary Update a category
// @Tags Admin Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body domain.CategoryRequest true "Category"
// @Success 200 {object} domain.CategoryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "category")
	if !ok {
		return
	}
	var req domain.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := h.categoryService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Description Products keep existing without a category; homepage entries are removed
// @Tags Admin Categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "category")
	if !ok {
		return
	}
	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

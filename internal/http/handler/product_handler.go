package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type ProductHandler struct {
	productService *service.ProductService
	logger         *zap.Logger
}

func NewProductHandler(productService *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListPublic godoc
// @Summary List active products
// @Tags Public
// @Produce json
// @Param category query string false "Category slug"
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {array} domain.PublicProductDTO
// @Failure 404 {object} domain.APIError "Unknown category"
// @Router /products [get]
func (h *ProductHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListPublic(r.Context(), r.URL.Query().Get("category"), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetPublic godoc
// @Summary Get an active product by slug
// @Tags Public
// @Produce json
// @Param slug path string true "Product slug"
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} domain.PublicProductDTO
// @Failure 404 {object} domain.APIError
// @Router /products/{slug} [get]
func (h *ProductHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetPublicBySlug(r.Context(), chi.URLParam(r, "slug"), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "get product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// List godoc
// @Summary List products
// @Tags Admin Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name or slug"
// @Param categoryId query string false "Filter by category ID"
// @Param featured query bool false "Filter by featured flag"
// @Param active query bool false "Filter by active flag"
// @Param sortBy query string false "Sort field" Enums(name, slug, sortOrder, isFeatured, createdAt, updatedAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ProductDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &domain.ProductFilters{
		Search:   r.URL.Query().Get("search"),
		Featured: parseBoolQuery(r, "featured"),
		Active:   parseBoolQuery(r, "active"),
	}
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid categoryId: must be a valid UUID")
			return
		}
		filters.CategoryID = &categoryID
	}

	result, err := h.productService.List(r.Context(), page, pageSize, filters, parseSortConfig(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list products")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a product
// @Tags Admin Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.ProductDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "product")
	if !ok {
		return
	}
	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Create godoc
// @Summary Create a product
// @Tags Admin Products
// @Accept json
// @Produce json
// @Param request body domain.ProductRequest true "Product"
// @Success 201 {object} domain.ProductDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.productService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create product")
		return
	}
	setLocation(w, r, product.ID)
	respondJSON(w, http.StatusCreated, product)
}

// Update godoc
// @Summary Update a product
// @Tags Admin Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body domain.ProductRequest true "Product"
// @Success 200 {object} domain.ProductDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "product")
	if !ok {
		return
	}
	var req domain.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.productService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a product
// @Tags Admin Products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "product")
	if !ok {
		return
	}
	if err := h.productService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

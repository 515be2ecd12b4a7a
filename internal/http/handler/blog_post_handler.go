package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type BlogPostHandler struct {
	postService *service.BlogPostService
	logger      *zap.Logger
}

func NewBlogPostHandler(postService *service.BlogPostService, logger *zap.Logger) *BlogPostHandler {
	return &BlogPostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPublic godoc
// @Summary List published blog posts
// @Description Newest first. Scheduled and draft posts are never listed.
// @Tags Public
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.PublicBlogPostDTO}
// @Router /blog [get]
func (h *BlogPostHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	result, err := h.postService.ListPublic(r.Context(), page, pageSize, language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list blog posts")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetPublic godoc
// @Summary Get a published blog post by slug
// @Description contentHtml is rendered from Markdown and sanitised
// @Tags Public
// @Produce json
// @Param slug path string true "Post slug"
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} domain.PublicBlogPostDTO
// @Failure 404 {object} domain.APIError
// @Router /blog/{slug} [get]
func (h *BlogPostHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.GetPublicBySlug(r.Context(), chi.URLParam(r, "slug"), language(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "get blog post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// List godoc
// @Summary List blog posts
// @Tags Admin Blog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by title or slug"
// @Param status query string false "Filter by status" Enums(draft, scheduled, published)
// @Param sortBy query string false "Sort field" Enums(title, status, publishAt, publishedAt, createdAt, updatedAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.BlogPostDTO}
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/blog-posts [get]
func (h *BlogPostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	filters := &domain.BlogPostFilters{
		Status: domain.BlogPostStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}
	result, err := h.postService.List(r.Context(), page, pageSize, filters, parseSortConfig(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list blog posts")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a blog post
// @Tags Admin Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} domain.BlogPostDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/blog-posts/{id} [get]
func (h *BlogPostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "blog post")
	if !ok {
		return
	}
	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get blog post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// Create godoc
// @Summary Create a blog post
// @Description status defaults to draft; scheduled requires publishAt
// @Tags Admin Blog
// @Accept json
// @Produce json
// @Param request body domain.BlogPostRequest true "Post"
// @Success 201 {object} domain.BlogPostDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/blog-posts [post]
func (h *BlogPostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.postService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create blog post")
		return
	}
	setLocation(w, r, post.ID)
	respondJSON(w, http.StatusCreated, post)
}

// Update godoc
// @Summary Update a blog post
// @Tags Admin Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body domain.BlogPostRequest true "Post"
// @Success 200 {object} domain.BlogPostDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/blog-posts/{id} [put]
func (h *BlogPostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "blog post")
	if !ok {
		return
	}
	var req domain.BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.postService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update blog post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a blog post
// @Tags Admin Blog
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/blog-posts/{id} [delete]
func (h *BlogPostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "blog post")
	if !ok {
		return
	}
	if err := h.postService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete blog post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for form boundaries and headers around the file part
const multipartOverhead = 1 << 20

type MediaHandler struct {
	mediaService *service.MediaService
	logger       *zap.Logger
}

func NewMediaHandler(mediaService *service.MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts JPEG, PNG, WebP and GIF. The type is detected from content, not the file name.
// @Tags Admin Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} domain.MediaDTO
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Failure 415 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/media [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.mediaService.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %d bytes", maxBytes))
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid file upload: file field is required")
		return
	}
	defer file.Close()

	media, err := h.mediaService.Upload(r.Context(), header.Filename, file)
	if err != nil {
		respondServiceError(w, h.logger, err, "upload file")
		return
	}

	setLocation(w, r, media.ID)
	respondJSON(w, http.StatusCreated, media)
}

// List godoc
// @Summary List uploaded media
// @Tags Admin Media
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.MediaDTO}
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/media [get]
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	result, err := h.mediaService.List(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, h.logger, err, "list media")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete an uploaded file
// @Tags Admin Media
// @Param id path string true "Media ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/media/{id} [delete]
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "media")
	if !ok {
		return
	}
	if err := h.mediaService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete media")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

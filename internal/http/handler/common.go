package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/i18n"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

// maxJSONBody bounds request bodies decoded by decodeJSON
const maxJSONBody = 1 << 20

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			errs[toJSONFieldName(fe.Field())] = formatValidationError(fe)
		}
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: errs,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "url":
		return "Must be a valid URL"
	case "nefield":
		return fmt.Sprintf("Must differ from %s", toJSONFieldName(fe.Param()))
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	case http.StatusRequestEntityTooLarge:
		return domain.ErrorTypeTooLarge
	default:
		return domain.ErrorTypeInternal
	}
}

// respondServiceError maps service sentinel errors to HTTP responses.
// Anything unrecognised is logged and reported as a 500 without detail.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, detailOf(err))
	case errors.Is(err, service.ErrFileTooLarge):
		respondWithError(w, http.StatusRequestEntityTooLarge, detailOf(err))
	case errors.Is(err, service.ErrUnsupportedFile):
		respondWithError(w, http.StatusUnsupportedMediaType, detailOf(err))
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, detailOf(err))
	case errors.Is(err, service.ErrConflict):
		respondWithError(w, http.StatusConflict, detailOf(err))
	case errors.Is(err, service.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, detailOf(err))
	default:
		logger.Error("failed to "+action, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// detailCategories are the base sentinels every service error wraps
var detailCategories = []error{service.ErrNotFound, service.ErrInvalidInput, service.ErrConflict, service.ErrUnauthorized}

// detailOf returns the client-facing part of a service error: everything after the base
// sentinel's own message, so context added by callers ("failed to ...") is dropped
func detailOf(err error) string {
	msg := err.Error()
	for _, base := range detailCategories {
		if !errors.Is(err, base) {
			continue
		}
		prefix := base.Error() + ": "
		if i := strings.Index(msg, prefix); i >= 0 {
			return msg[i+len(prefix):]
		}
		return base.Error()
	}
	return msg
}

// decodeJSON reads and validates a JSON body into dst, writing the error response itself
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}

// parseID reads the {id} URL parameter
func parseID(w http.ResponseWriter, r *http.Request, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID: must be a valid UUID", what))
		return uuid.Nil, false
	}
	return id, true
}

func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// parsePagination reads page and pageSize with the repository defaults
func parsePagination(r *http.Request) (int, int) {
	page := parseIntQuery(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := parseIntQuery(r, "pageSize", repository.DefaultPageSize)
	if pageSize < 1 {
		pageSize = repository.DefaultPageSize
	}
	if pageSize > repository.MaxPageSize {
		pageSize = repository.MaxPageSize
	}
	return page, pageSize
}

// parseSortConfig reads sortBy and sortOrder query parameters
func parseSortConfig(r *http.Request) repository.SortConfig {
	sort := repository.DefaultSortConfig()
	if field := r.URL.Query().Get("sortBy"); field != "" {
		sort.Field = field
	}
	if order := r.URL.Query().Get("sortOrder"); order != "" {
		sort.Order = repository.ParseSortOrder(order)
	}
	return sort
}

func parseBoolQuery(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// language returns the language negotiated by the locale middleware
func language(r *http.Request) domain.Language {
	return i18n.FromContext(r.Context())
}

// setLocation points clients at a newly created admin resource
func setLocation(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+id.String())
}

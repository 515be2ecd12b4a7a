package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

// AuditHandler handles audit log related HTTP requests
type AuditHandler struct {
	auditService *service.AuditLogService
	logger       *zap.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditLogService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// List godoc
// @Summary List audit logs
// @Description Returns a paginated list of audit log entries, newest first
// @Tags Admin Audit
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 200)"
// @Param userId query string false "Filter by user ID"
// @Param action query string false "Filter by action type" Enums(create, update, delete)
// @Param entityType query string false "Filter by entity type"
// @Param entityId query string false "Filter by entity ID"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.AuditLogDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/audit [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &domain.AuditLogFilters{
		UserID:     r.URL.Query().Get("userId"),
		EntityType: r.URL.Query().Get("entityType"),
		Action:     domain.AuditAction(r.URL.Query().Get("action")),
	}
	if raw := r.URL.Query().Get("entityId"); raw != "" {
		entityID, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid entityId: must be a valid UUID")
			return
		}
		filters.EntityID = &entityID
	}

	result, err := h.auditService.List(r.Context(), filters, page, pageSize)
	if err != nil {
		respondServiceError(w, h.logger, err, "list audit logs")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get an audit log entry
// @Tags Admin Audit
// @Produce json
// @Param id path string true "Audit log ID"
// @Success 200 {object} domain.AuditLogDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/audit/{id} [get]
func (h *AuditHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "audit log")
	if !ok {
		return
	}
	entry, err := h.auditService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get audit log")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

// AuditLogService records and lists admin modifications
type AuditLogService struct {
	auditRepo *repository.AuditLogRepository
	logger    *zap.Logger
}

// NewAuditLogService creates a new audit log service
func NewAuditLogService(auditRepo *repository.AuditLogRepository, logger *zap.Logger) *AuditLogService {
	return &AuditLogService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// LogEntry represents the input for creating an audit log entry
type LogEntry struct {
	Action     domain.AuditAction
	EntityType string
	EntityID   *uuid.UUID
	NewValues  interface{}
}

// Log creates an audit log entry from context and request
func (s *AuditLogService) Log(ctx context.Context, r *http.Request, entry LogEntry) error {
	auditLog := &domain.AuditLog{
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		NewValues:   "null",
		PerformedAt: time.Now().UTC(),
	}

	if userCtx, ok := auth.FromContext(ctx); ok {
		auditLog.UserID = userCtx.UserID.String()
		auditLog.UserEmail = userCtx.Email
	}

	if r != nil {
		auditLog.IPAddress = ClientIP(r)
		auditLog.UserAgent = r.UserAgent()
		auditLog.RequestID = r.Header.Get("X-Request-ID")
	}

	if entry.NewValues != nil {
		if raw, err := json.Marshal(entry.NewValues); err == nil {
			auditLog.NewValues = string(raw)
		}
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.logger.Error("failed to create audit log",
			zap.String("action", string(entry.Action)),
			zap.String("entity_type", entry.EntityType),
			zap.Error(err))
		return err
	}
	return nil
}

// List returns a page of audit entries, newest first
func (s *AuditLogService) List(ctx context.Context, filters *domain.AuditLogFilters, page, pageSize int) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	logs, total, err := s.auditRepo.List(ctx, filters, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	dtos := make([]domain.AuditLogDTO, len(logs))
	for i := range logs {
		dtos[i] = mapper.ToAuditLogDTO(&logs[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// GetByID retrieves a specific audit log entry
func (s *AuditLogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditLogDTO, error) {
	log, err := s.auditRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get audit log")
	}
	dto := mapper.ToAuditLogDTO(log)
	return &dto, nil
}

// ClientIP extracts the client IP address from the request
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(ip)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

// maxAuditBody caps how much of a request body is copied into the audit log
const maxAuditBody = 64 << 10

// AuditConfig holds configuration for audit middleware
type AuditConfig struct {
	// SkipPaths contains path prefixes that should not be audited
	SkipPaths []string
	// SkipMethods contains HTTP methods that should not be audited
	SkipMethods []string
	// AuditReads enables auditing of GET requests (defaults to false)
	AuditReads bool
}

// DefaultAuditConfig returns default audit configuration
func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		SkipPaths: []string{
			"/health",
			"/swagger",
			"/api/v1/auth/login",
		},
		SkipMethods: []string{
			http.MethodOptions,
			http.MethodHead,
		},
		AuditReads: false,
	}
}

// Auditor records a single audit entry
type Auditor interface {
	Log(ctx context.Context, r *http.Request, entry service.LogEntry) error
}

// AuditMiddleware records successful admin modifications in the audit log
type AuditMiddleware struct {
	auditor Auditor
	config  *AuditConfig
	logger  *zap.Logger
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(auditor Auditor, config *AuditConfig, logger *zap.Logger) *AuditMiddleware {
	if config == nil {
		config = DefaultAuditConfig()
	}
	return &AuditMiddleware{
		auditor: auditor,
		config:  config,
		logger:  logger,
	}
}

// entityTypes maps admin route segments to audit entity types
var entityTypes = map[string]string{
	"products":   "Product",
	"categories": "Category",
	"blog-posts": "BlogPost",
	"countries":  "ExportCountry",
	"homepage":   "HomepageItem",
	"messages":   "ContactMessage",
	"settings":   "SiteSettings",
	"media":      "Media",
	"users":      "AdminUser",
}

// Audit returns middleware that logs modifications to the audit log
func (m *AuditMiddleware) Audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.shouldAudit(r) {
			next.ServeHTTP(w, r)
			return
		}

		var requestBody []byte
		if r.Body != nil && isJSON(r) && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
			raw, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBody+1))
			if err == nil {
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), r.Body))
				if len(raw) <= maxAuditBody {
					requestBody = raw
				}
			}
		}

		rw := &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		// the entry outlives the client connection
		ctx := context.WithoutCancel(r.Context())
		m.logAudit(ctx, r, rw, requestBody)
	})
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// shouldAudit determines if a request should be audited
func (m *AuditMiddleware) shouldAudit(r *http.Request) bool {
	for _, method := range m.config.SkipMethods {
		if r.Method == method {
			return false
		}
	}

	if r.Method == http.MethodGet && !m.config.AuditReads {
		return false
	}

	for _, skipPath := range m.config.SkipPaths {
		if strings.HasPrefix(r.URL.Path, skipPath) {
			return false
		}
	}

	return true
}

func (m *AuditMiddleware) logAudit(ctx context.Context, r *http.Request, rw *responseCapture, requestBody []byte) {
	if m.auditor == nil {
		return
	}

	// Only log successful modifications
	if rw.statusCode < 200 || rw.statusCode >= 300 {
		return
	}

	action := methodToAction(r.Method)
	if action == "" {
		return
	}

	entityType, entityID := extractEntityInfo(r)
	if entityID == nil {
		entityID = idFromLocation(rw.Header().Get("Location"))
	}

	var values interface{}
	if len(requestBody) > 0 {
		var parsed map[string]interface{}
		if json.Unmarshal(requestBody, &parsed) == nil {
			for _, key := range []string{"password", "currentPassword", "newPassword", "secret", "token", "apiKey"} {
				delete(parsed, key)
			}
			values = parsed
		}
	}

	entry := service.LogEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		NewValues:  values,
	}

	if err := m.auditor.Log(ctx, r, entry); err != nil {
		m.logger.Warn("failed to create audit log entry",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err))
	}
}

func methodToAction(method string) domain.AuditAction {
	switch method {
	case http.MethodPost:
		return domain.AuditActionCreate
	case http.MethodPut, http.MethodPatch:
		return domain.AuditActionUpdate
	case http.MethodDelete:
		return domain.AuditActionDelete
	default:
		return ""
	}
}

func extractEntityInfo(r *http.Request) (string, *uuid.UUID) {
	routeCtx := chi.RouteContext(r.Context())
	if routeCtx == nil {
		return entityFromPath(r.URL.Path), nil
	}

	var entityID *uuid.UUID
	if idStr := routeCtx.URLParam("id"); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			entityID = &id
		}
	}

	pattern := routeCtx.RoutePattern()
	if pattern == "" {
		pattern = r.URL.Path
	}
	return entityFromPath(pattern), entityID
}

// entityFromPath returns the entity type of the last known segment in path
func entityFromPath(p string) string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if entityType, ok := entityTypes[parts[i]]; ok {
			return entityType
		}
	}
	return "Unknown"
}

func idFromLocation(location string) *uuid.UUID {
	if location == "" {
		return nil
	}
	id, err := uuid.Parse(path.Base(location))
	if err != nil {
		return nil
	}
	return &id
}

// responseCapture wraps ResponseWriter to capture the status code
type responseCapture struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseCapture) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

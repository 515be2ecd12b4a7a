package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/database"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/http/handler"
	"github.com/harvest-export/website/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/harvest-export/website/docs" // Import generated swagger docs
)

// Site mounts the server-rendered public pages
type Site interface {
	Mount(r chi.Router, limitContact func(http.Handler) http.Handler)
}

// Handlers groups the JSON API handlers
type Handlers struct {
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	BlogPost  *handler.BlogPostHandler
	Country   *handler.ExportCountryHandler
	Homepage  *handler.HomepageHandler
	Message   *handler.MessageHandler
	Settings  *handler.SettingsHandler
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Audit     *handler.AuditHandler
	Media     *handler.MediaHandler
}

type Router struct {
	cfg             *config.Config
	logger          *zap.Logger
	db              *gorm.DB
	authMiddleware  *auth.Middleware
	rateLimiter     *middleware.RateLimiter
	auditMiddleware *middleware.AuditMiddleware
	handlers        Handlers
	site            Site
	uploads         http.Handler
}

// NewRouter wires the HTTP surface. uploads serves locally stored media and may be nil.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	auditMiddleware *middleware.AuditMiddleware,
	handlers Handlers,
	site Site,
	uploads http.Handler,
) *Router {
	return &Router{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		auditMiddleware: auditMiddleware,
		handlers:        handlers,
		site:            site,
		uploads:         uploads,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	fallback, ok := domain.ParseLanguage(rt.cfg.App.DefaultLanguage)
	if !ok {
		fallback = domain.LanguageEnglish
	}

	// Global middleware
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimw.Timeout(timeout))
	}
	r.Use(middleware.Locale(fallback))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/health/db", rt.databaseHealth)
	r.Get("/health/ready", rt.readiness)

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	if rt.uploads != nil {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", rt.uploads))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))

		h := rt.handlers

		// Public site API
		r.Get("/homepage", h.Homepage.Resolve)
		r.Get("/settings", h.Settings.GetPublic)
		r.Get("/categories", h.Category.ListPublic)
		r.Get("/categories/{slug}", h.Category.GetPublic)
		r.Get("/products", h.Product.ListPublic)
		r.Get("/products/{slug}", h.Product.GetPublic)
		r.Get("/blog", h.BlogPost.ListPublic)
		r.Get("/blog/{slug}", h.BlogPost.GetPublic)
		r.Get("/countries", h.Country.ListPublic)
		r.With(rt.rateLimiter.LimitContact).Post("/contact", h.Message.Submit)

		r.With(rt.rateLimiter.LimitLogin).Post("/auth/login", h.Auth.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/admin", func(r chi.Router) {
				r.Use(rt.auditMiddleware.Audit) // Audit all modifications

				r.Get("/dashboard", h.Dashboard.GetMetrics)

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", h.Category.List)
					r.Post("/", h.Category.Create)
					r.Get("/{id}", h.Category.GetByID)
					r.Put("/{id}", h.Category.Update)
					r.Delete("/{id}", h.Category.Delete)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.Product.List)
					r.Post("/", h.Product.Create)
					r.Get("/{id}", h.Product.GetByID)
					r.Put("/{id}", h.Product.Update)
					r.Delete("/{id}", h.Product.Delete)
				})

				r.Route("/blog-posts", func(r chi.Router) {
					r.Get("/", h.BlogPost.List)
					r.Post("/", h.BlogPost.Create)
					r.Get("/{id}", h.BlogPost.GetByID)
					r.Put("/{id}", h.BlogPost.Update)
					r.Delete("/{id}", h.BlogPost.Delete)
				})

				r.Route("/countries", func(r chi.Router) {
					r.Get("/", h.Country.List)
					r.Post("/", h.Country.Create)
					r.Get("/{id}", h.Country.GetByID)
					r.Put("/{id}", h.Country.Update)
					r.Delete("/{id}", h.Country.Delete)
				})

				r.Route("/homepage", func(r chi.Router) {
					r.Get("/", h.Homepage.ListSection)
					r.Post("/", h.Homepage.Add)
					r.Put("/reorder", h.Homepage.Reorder)
					r.Delete("/{id}", h.Homepage.Remove)
				})

				r.Route("/messages", func(r chi.Router) {
					r.Get("/", h.Message.List)
					r.Get("/{id}", h.Message.GetByID)
					r.Put("/{id}/read", h.Message.MarkRead)
					r.Delete("/{id}", h.Message.Delete)
				})

				r.With(rt.authMiddleware.RequireUser).Put("/users/me/password", h.Auth.ChangePassword)

				r.Get("/settings", h.Settings.Get)
				r.Put("/settings", h.Settings.Update)

				r.Route("/media", func(r chi.Router) {
					r.Get("/", h.Media.List)
					r.Post("/", h.Media.Upload)
					r.Delete("/{id}", h.Media.Delete)
				})

				r.Route("/audit", func(r chi.Router) {
					r.Get("/", h.Audit.List)
					r.Get("/{id}", h.Audit.GetByID)
				})
			})
		})
	})

	// Server-rendered pages own everything else
	rt.site.Mount(r, rt.rateLimiter.LimitContact)

	return r
}

// databaseHealth is the readiness probe with connection pool stats
func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(rt.db)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats": map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		},
	})
}

// readiness checks every dependency
func (rt *Router) readiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]interface{})
	status := http.StatusOK

	if err := database.HealthCheck(rt.db); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		checks["database"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = map[string]interface{}{"status": "healthy"}
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}

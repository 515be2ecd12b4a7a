package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harvest-export/website/docs"
	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/content"
	"github.com/harvest-export/website/internal/database"
	"github.com/harvest-export/website/internal/http/handler"
	"github.com/harvest-export/website/internal/http/middleware"
	"github.com/harvest-export/website/internal/http/router"
	"github.com/harvest-export/website/internal/i18n"
	"github.com/harvest-export/website/internal/jobs"
	"github.com/harvest-export/website/internal/logger"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/service"
	"github.com/harvest-export/website/internal/storage"
	"github.com/harvest-export/website/internal/web"
	"go.uber.org/zap"
)

// @title Harvest Export API
// @version 1.0
// @description Public catalog API and admin content management for the Harvest Export website

// @contact.name Harvest Export
// @contact.email web@harvest-export.example

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token from /auth/login

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API key for automation

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	docs.SwaggerInfo.Host = swaggerHost(&basicCfg.App)

	// Development reads secrets from the environment, staging/production from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated")
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	var uploads http.Handler
	if local, ok := fileStorage.(*storage.LocalStorage); ok {
		uploads = local.FileServer()
	}

	bundle, err := i18n.NewBundle(cfg.I18n.OverridesDir, log)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	if cfg.I18n.WatchOverrides && cfg.I18n.OverridesDir != "" {
		watcher, err := i18n.NewWatcher(bundle, log)
		if err != nil {
			return fmt.Errorf("failed to create translation watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Warn("Translation overrides will not hot reload", zap.Error(err))
		}
		defer watcher.Stop()
	}

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	countryRepo := repository.NewExportCountryRepository(db)
	homepageRepo := repository.NewHomepageRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	settingsRepo := repository.NewSiteSettingsRepository(db)
	userRepo := repository.NewAdminUserRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	// Services
	tokens := auth.NewJWTManager(&cfg.Auth)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, log)
	postService := service.NewBlogPostService(postRepo, content.NewRenderer(), log)
	countryService := service.NewExportCountryService(countryRepo, log)
	homepageService := service.NewHomepageService(homepageRepo, categoryRepo, productRepo, postRepo, countryRepo, postService, log)
	contactService := service.NewContactService(messageRepo, log)
	settingsService := service.NewSiteSettingsService(settingsRepo, log)
	authService := service.NewAuthService(userRepo, tokens, log)
	auditLogService := service.NewAuditLogService(auditLogRepo, log)
	dashboardService := service.NewDashboardService(productRepo, categoryRepo, postRepo, countryRepo, messageRepo, auditLogRepo, log)
	mediaService := service.NewMediaService(mediaRepo, fileStorage, cfg.Storage.MaxUploadSizeMB<<20, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(tokens, cfg.ApiKey.Value, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	auditMiddleware := middleware.NewAuditMiddleware(auditLogService, nil, log)

	handlers := router.Handlers{
		Category:  handler.NewCategoryHandler(categoryService, log),
		Product:   handler.NewProductHandler(productService, log),
		BlogPost:  handler.NewBlogPostHandler(postService, log),
		Country:   handler.NewExportCountryHandler(countryService, log),
		Homepage:  handler.NewHomepageHandler(homepageService, log),
		Message:   handler.NewMessageHandler(contactService, log),
		Settings:  handler.NewSettingsHandler(settingsService, log),
		Auth:      handler.NewAuthHandler(authService, log),
		Dashboard: handler.NewDashboardHandler(dashboardService, log),
		Audit:     handler.NewAuditHandler(auditLogService, log),
		Media:     handler.NewMediaHandler(mediaService, log),
	}

	site, err := web.NewServer(web.Services{
		Homepage:   homepageService,
		Categories: categoryService,
		Products:   productService,
		Posts:      postService,
		Countries:  countryService,
		Settings:   settingsService,
		Contact:    contactService,
	}, bundle, cfg.App.BaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to initialize site: %w", err)
	}

	rt := router.NewRouter(cfg, log, db, authMiddleware, rateLimiter, auditMiddleware, handlers, site, uploads)

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterContentJobs(scheduler, &cfg.Jobs, postService, contactService, log); err != nil {
			return fmt.Errorf("failed to register jobs: %w", err)
		}
		scheduler.Start()
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           rt.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("default_language", cfg.App.DefaultLanguage))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

// swaggerHost derives the docs host from the public base URL
func swaggerHost(app *config.AppConfig) string {
	if u, err := url.Parse(app.BaseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return fmt.Sprintf("localhost:%d", app.Port)
}

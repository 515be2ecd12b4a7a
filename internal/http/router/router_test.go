package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/content"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/http/handler"
	"github.com/harvest-export/website/internal/http/middleware"
	"github.com/harvest-export/website/internal/http/router"
	"github.com/harvest-export/website/internal/i18n"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/service"
	"github.com/harvest-export/website/internal/storage"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/harvest-export/website/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testAPIKey = "router-test-key"

type testApp struct {
	db      *gorm.DB
	auth    *service.AuthService
	handler http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	cfg := &config.Config{
		App:       config.AppConfig{Name: "harvest-test", Environment: "test", BaseURL: "https://example.test", DefaultLanguage: "en"},
		Auth:      config.AuthConfig{JWTSecret: "router-secret", Issuer: "harvest-test", TokenTTL: 60},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}

	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	countryRepo := repository.NewExportCountryRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	tokens := auth.NewJWTManager(&cfg.Auth)
	categories := service.NewCategoryService(categoryRepo, log)
	products := service.NewProductService(productRepo, categoryRepo, log)
	posts := service.NewBlogPostService(postRepo, content.NewRenderer(), log)
	countries := service.NewExportCountryService(countryRepo, log)
	homepage := service.NewHomepageService(repository.NewHomepageRepository(db), categoryRepo, productRepo, postRepo, countryRepo, posts, log)
	contact := service.NewContactService(messageRepo, log)
	settings := service.NewSiteSettingsService(repository.NewSiteSettingsRepository(db), log)
	authSvc := service.NewAuthService(repository.NewAdminUserRepository(db), tokens, log)
	audit := service.NewAuditLogService(auditRepo, log)

	handlers := router.Handlers{
		Category:  handler.NewCategoryHandler(categories, log),
		Product:   handler.NewProductHandler(products, log),
		BlogPost:  handler.NewBlogPostHandler(posts, log),
		Country:   handler.NewExportCountryHandler(countries, log),
		Homepage:  handler.NewHomepageHandler(homepage, log),
		Message:   handler.NewMessageHandler(contact, log),
		Settings:  handler.NewSettingsHandler(settings, log),
		Auth:      handler.NewAuthHandler(authSvc, log),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(productRepo, categoryRepo, postRepo, countryRepo, messageRepo, auditRepo, log), log),
		Audit:     handler.NewAuditHandler(audit, log),
		Media:     handler.NewMediaHandler(service.NewMediaService(repository.NewMediaRepository(db), store, 1<<20, log), log),
	}

	bundle, err := i18n.NewBundle("", log)
	require.NoError(t, err)
	site, err := web.NewServer(web.Services{
		Homepage:   homepage,
		Categories: categories,
		Products:   products,
		Posts:      posts,
		Countries:  countries,
		Settings:   settings,
		Contact:    contact,
	}, bundle, cfg.App.BaseURL, log)
	require.NoError(t, err)

	rt := router.NewRouter(cfg, log, db,
		auth.NewMiddleware(tokens, testAPIKey, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		middleware.NewAuditMiddleware(audit, nil, log),
		handlers, site, store.FileServer())

	return &testApp{db: db, auth: authSvc, handler: rt.Setup()}
}

func (a *testApp) do(t *testing.T, method, target string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func apiKeyHeader() http.Header {
	return http.Header{"X-Api-Key": []string{testAPIKey}}
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = app.do(t, http.MethodGet, "/health/ready", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"healthy"`)
}

func TestRouter_AdminRequiresAuthentication(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodGet, "/api/v1/admin/categories", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/v1/admin/categories", nil, http.Header{"X-Api-Key": []string{"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/v1/admin/categories", nil, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_CreateIsAudited(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodPost, "/api/v1/admin/categories", domain.CategoryRequest{
		Name:     "Citrus",
		NameAr:   "حمضيات",
		IsActive: true,
	}, apiKeyHeader())
	require.Equal(t, http.StatusCreated, rr.Code)

	var created domain.CategoryDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "citrus", created.Slug)
	assert.True(t, strings.HasSuffix(rr.Header().Get("Location"), created.ID.String()))

	var entries []domain.AuditLog
	require.NoError(t, app.db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionCreate, entries[0].Action)
	assert.Equal(t, "Category", entries[0].EntityType)
	require.NotNil(t, entries[0].EntityID)
	assert.Equal(t, created.ID, *entries[0].EntityID)
	assert.Equal(t, "system@localhost", entries[0].UserEmail)

	// public views see it by slug, in either language
	rr = app.do(t, http.MethodGet, "/api/v1/categories/citrus", nil, http.Header{"Accept-Language": []string{"ar"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "حمضيات")

	rr = app.do(t, http.MethodGet, "/categories/citrus", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Citrus")
}

func TestRouter_ChangePasswordNeedsSignedInAdmin(t *testing.T) {
	app := newTestApp(t)
	_, err := app.auth.CreateAdmin(context.Background(), "owner@example.com", "Owner", "correct-horse")
	require.NoError(t, err)

	change := domain.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "battery-staple"}

	rr := app.do(t, http.MethodPut, "/api/v1/admin/users/me/password", change, apiKeyHeader())
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = app.do(t, http.MethodPost, "/api/v1/auth/login", domain.LoginRequest{Email: "owner@example.com", Password: "correct-horse"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var login domain.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))

	bearer := http.Header{"Authorization": []string{"Bearer " + login.Token}}

	rr = app.do(t, http.MethodGet, "/api/v1/auth/me", nil, bearer)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "owner@example.com")

	rr = app.do(t, http.MethodPut, "/api/v1/admin/users/me/password", change, bearer)
	require.Equal(t, http.StatusNoContent, rr.Code)

	var entry domain.AuditLog
	require.NoError(t, app.db.Where("entity_type = ?", "AdminUser").First(&entry).Error)
	assert.Equal(t, domain.AuditActionUpdate, entry.Action)
	assert.NotContains(t, entry.NewValues, "battery-staple")
	assert.NotContains(t, entry.NewValues, "correct-horse")

	rr = app.do(t, http.MethodPost, "/api/v1/auth/login", domain.LoginRequest{Email: "owner@example.com", Password: "battery-staple"}, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_PublicSurface(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/products", "/blog", "/about", "/contact", "/sitemap.xml", "/robots.txt"} {
		rr := app.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := app.do(t, http.MethodGet, "/api/v1/homepage", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = app.do(t, http.MethodGet, "/no-such-page", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

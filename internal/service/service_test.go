package service

import (
	"context"
	"testing"
	"time"

	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/content"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/storage"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testServices struct {
	db         *gorm.DB
	categories *CategoryService
	products   *ProductService
	posts      *BlogPostService
	countries  *ExportCountryService
	homepage   *HomepageService
	contact    *ContactService
	settings   *SiteSettingsService
	auth       *AuthService
	audit      *AuditLogService
	dashboard  *DashboardService
	media      *MediaService
	tokens     *auth.JWTManager
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	countryRepo := repository.NewExportCountryRepository(db)
	homepageRepo := repository.NewHomepageRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	settingsRepo := repository.NewSiteSettingsRepository(db)
	userRepo := repository.NewAdminUserRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	tokens := auth.NewJWTManager(&config.AuthConfig{JWTSecret: "test-secret", Issuer: "harvest-test", TokenTTL: 60})

	posts := NewBlogPostService(postRepo, content.NewRenderer(), logger)
	authSvc := NewAuthService(userRepo, tokens, logger)
	authSvc.cost = bcrypt.MinCost

	return &testServices{
		db:         db,
		categories: NewCategoryService(categoryRepo, logger),
		products:   NewProductService(productRepo, categoryRepo, logger),
		posts:      posts,
		countries:  NewExportCountryService(countryRepo, logger),
		homepage:   NewHomepageService(homepageRepo, categoryRepo, productRepo, postRepo, countryRepo, posts, logger),
		contact:    NewContactService(messageRepo, logger),
		settings:   NewSiteSettingsService(settingsRepo, logger),
		auth:       authSvc,
		audit:      NewAuditLogService(auditRepo, logger),
		dashboard:  NewDashboardService(productRepo, categoryRepo, postRepo, countryRepo, messageRepo, auditRepo, logger),
		media:      NewMediaService(mediaRepo, store, 1024, logger),
		tokens:     tokens,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ctx() context.Context {
	return context.Background()
}

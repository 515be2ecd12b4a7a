package service

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_SubmitAndRead(t *testing.T) {
	s := newTestServices(t)

	msg, err := s.contact.Submit(ctx(), &domain.ContactRequest{
		Name:    "  Amina ",
		Email:   "Buyer@Example.COM",
		Company: "Souk Imports",
		Message: "Please send a quote for 20 tonnes of dates.",
	}, domain.LanguageArabic, ClientInfo{IPAddress: "203.0.113.9", UserAgent: "test"})
	require.NoError(t, err)
	assert.Equal(t, "Amina", msg.Name)
	assert.Equal(t, "buyer@example.com", msg.Email)
	assert.Equal(t, "ar", msg.Language)
	assert.False(t, msg.IsRead)

	unread, err := s.contact.CountUnread(ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	read, err := s.contact.MarkRead(ctx(), msg.ID, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.NotEmpty(t, read.ReadAt)

	again, err := s.contact.MarkRead(ctx(), msg.ID, false)
	require.NoError(t, err)
	assert.False(t, again.IsRead)
	assert.Empty(t, again.ReadAt)

	_, err = s.contact.MarkRead(ctx(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.contact.Delete(ctx(), msg.ID))
	assert.ErrorIs(t, s.contact.Delete(ctx(), msg.ID), ErrNotFound)
}

func TestContactService_PurgeRead(t *testing.T) {
	s := newTestServices(t)
	old := testutil.CreateTestMessage(t, s.db, "old@example.com", true)
	testutil.CreateTestMessage(t, s.db, "unread@example.com", false)
	testutil.CreateTestMessage(t, s.db, "fresh@example.com", true)
	require.NoError(t, s.db.Model(old).Update("created_at", time.Now().UTC().AddDate(0, 0, -400)).Error)

	count, err := s.contact.PurgeRead(ctx(), 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = s.contact.PurgeRead(ctx(), 0)
	require.NoError(t, err)
	assert.Zero(t, count)

	page, err := s.contact.List(ctx(), 1, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

func TestSiteSettingsService(t *testing.T) {
	s := newTestServices(t)

	current, err := s.settings.Get(ctx())
	require.NoError(t, err)
	assert.Equal(t, "Harvest Export", current.CompanyName)
	assert.Equal(t, 40, current.TickerSpeed)

	updated, err := s.settings.Update(ctx(), &domain.UpdateSiteSettingsRequest{
		CompanyName:   "Nile Harvest",
		CompanyNameAr: "حصاد النيل",
		Tagline:       "From our farms to your market",
		TickerSpeed:   0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nile Harvest", updated.CompanyName)
	assert.Equal(t, 40, updated.TickerSpeed)

	ar, err := s.settings.GetPublic(ctx(), domain.LanguageArabic)
	require.NoError(t, err)
	assert.Equal(t, "حصاد النيل", ar.CompanyName)
	assert.Equal(t, "From our farms to your market", ar.Tagline)
}

func TestAuthService_Login(t *testing.T) {
	s := newTestServices(t)
	admin, err := s.auth.CreateAdmin(ctx(), "Admin@Harvest.test", "Site Admin", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "admin@harvest.test", admin.Email)

	_, err = s.auth.CreateAdmin(ctx(), "admin@harvest.test", "Again", "correct-horse")
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)

	_, err = s.auth.CreateAdmin(ctx(), "short@harvest.test", "Short", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	resp, err := s.auth.Login(ctx(), &domain.LoginRequest{Email: "ADMIN@harvest.test", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.LastLoginAt)

	userCtx, err := s.tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, userCtx.UserID)

	me, err := s.auth.Me(auth.WithUserContext(ctx(), userCtx))
	require.NoError(t, err)
	assert.Equal(t, "Site Admin", me.Name)

	_, err = s.auth.Me(ctx())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = s.auth.Login(ctx(), &domain.LoginRequest{Email: "admin@harvest.test", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.auth.Login(ctx(), &domain.LoginRequest{Email: "nobody@harvest.test", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SetPasswordAndInactive(t *testing.T) {
	s := newTestServices(t)
	admin, err := s.auth.CreateAdmin(ctx(), "ops@harvest.test", "", "first-password")
	require.NoError(t, err)
	assert.Equal(t, "ops@harvest.test", admin.Name)

	require.NoError(t, s.auth.SetPassword(ctx(), "ops@harvest.test", "second-password"))
	_, err = s.auth.Login(ctx(), &domain.LoginRequest{Email: "ops@harvest.test", Password: "first-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.auth.Login(ctx(), &domain.LoginRequest{Email: "ops@harvest.test", Password: "second-password"})
	require.NoError(t, err)

	require.NoError(t, s.db.Model(&domain.AdminUser{}).Where("id = ?", admin.ID).Update("is_active", false).Error)
	_, err = s.auth.Login(ctx(), &domain.LoginRequest{Email: "ops@harvest.test", Password: "second-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.ErrorIs(t, s.auth.SetPassword(ctx(), "missing@harvest.test", "whatever-pass"), ErrNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	s := newTestServices(t)
	admin, err := s.auth.CreateAdmin(ctx(), "editor@harvest.test", "Editor", "first-password")
	require.NoError(t, err)
	signedIn := auth.WithUserContext(ctx(), &auth.UserContext{UserID: admin.ID, Email: admin.Email, Method: auth.MethodJWT})

	err = s.auth.ChangePassword(signedIn, &domain.ChangePasswordRequest{CurrentPassword: "not-my-password", NewPassword: "second-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = s.auth.ChangePassword(signedIn, &domain.ChangePasswordRequest{CurrentPassword: "first-password", NewPassword: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	require.NoError(t, s.auth.ChangePassword(signedIn, &domain.ChangePasswordRequest{CurrentPassword: "first-password", NewPassword: "second-password"}))
	_, err = s.auth.Login(ctx(), &domain.LoginRequest{Email: "editor@harvest.test", Password: "second-password"})
	require.NoError(t, err)

	system := auth.WithUserContext(ctx(), &auth.UserContext{UserID: auth.SystemUserID, Method: auth.MethodAPIKey})
	err = s.auth.ChangePassword(system, &domain.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "second-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuditLogService_LogAndList(t *testing.T) {
	s := newTestServices(t)
	entityID := uuid.New()
	userCtx := &auth.UserContext{UserID: uuid.New(), Email: "admin@harvest.test", Method: auth.MethodJWT}

	r := httptest.NewRequest("POST", "/api/v1/admin/products", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	r.Header.Set("X-Request-ID", "req-1")

	require.NoError(t, s.audit.Log(auth.WithUserContext(ctx(), userCtx), r, LogEntry{
		Action:     domain.AuditActionCreate,
		EntityType: "Product",
		EntityID:   &entityID,
		NewValues:  map[string]string{"name": "Dates"},
	}))

	page, err := s.audit.List(ctx(), &domain.AuditLogFilters{EntityType: "Product"}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	entry := page.Data.([]domain.AuditLogDTO)[0]
	assert.Equal(t, "198.51.100.7", entry.IPAddress)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "admin@harvest.test", entry.UserEmail)
	assert.JSONEq(t, `{"name":"Dates"}`, entry.NewValues)

	got, err := s.audit.GetByID(ctx(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditActionCreate, got.Action)
}

func TestDashboardService(t *testing.T) {
	s := newTestServices(t)
	cat := testutil.CreateTestCategory(t, s.db, "Dates", "dates")
	testutil.CreateTestProduct(t, s.db, "Medjool", "medjool", &cat.ID)
	hidden := testutil.CreateTestProduct(t, s.db, "Hidden", "hidden", nil)
	require.NoError(t, s.db.Model(hidden).Update("is_active", false).Error)
	testutil.CreateTestPost(t, s.db, "One", "one", domain.BlogPostStatusPublished)
	testutil.CreateTestPost(t, s.db, "Two", "two", domain.BlogPostStatusDraft)
	testutil.CreateTestCountry(t, s.db, "Germany", "DE")
	testutil.CreateTestMessage(t, s.db, "a@example.com", false)
	testutil.CreateTestMessage(t, s.db, "b@example.com", true)

	metrics, err := s.dashboard.GetMetrics(ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(2), metrics.Products)
	assert.Equal(t, int64(1), metrics.ActiveProducts)
	assert.Equal(t, int64(1), metrics.Categories)
	assert.Equal(t, int64(1), metrics.PublishedPosts)
	assert.Equal(t, int64(1), metrics.DraftPosts)
	assert.Zero(t, metrics.ScheduledPosts)
	assert.Equal(t, int64(1), metrics.Countries)
	assert.Equal(t, int64(2), metrics.Messages)
	assert.Equal(t, int64(1), metrics.UnreadMessages)
	assert.Len(t, metrics.RecentMessages, 2)
	assert.Empty(t, metrics.RecentActivity)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestMediaService_Upload(t *testing.T) {
	s := newTestServices(t)

	media, err := s.media.Upload(ctx(), `C:\photos\dates.png`, bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "dates.png", media.FileName)
	assert.Equal(t, "image/png", media.ContentType)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/media/"), media.URL)
	assert.True(t, strings.HasSuffix(media.URL, ".png"), media.URL)

	_, err = s.media.Upload(ctx(), "notes.txt", strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = s.media.Upload(ctx(), "empty.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyFile)

	big := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)
	_, err = s.media.Upload(ctx(), "big.png", bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	page, err := s.media.List(ctx(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	require.NoError(t, s.media.Delete(ctx(), media.ID))
	assert.ErrorIs(t, s.media.Delete(ctx(), media.ID), ErrNotFound)
}

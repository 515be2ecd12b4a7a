package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{JWTSecret: "test-secret", Issuer: "harvest-test", TokenTTL: 60}
}

func testAdmin() *domain.AdminUser {
	user := &domain.AdminUser{Email: "admin@example.com", Name: "Site Admin", IsActive: true}
	user.ID = uuid.New()
	return user
}

func TestJWTManager_IssueAndValidate(t *testing.T) {
	manager := auth.NewJWTManager(testAuthConfig())
	user := testAdmin()

	token, expiresAt, err := manager.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userCtx, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, "admin@example.com", userCtx.Email)
	assert.Equal(t, "Site Admin", userCtx.DisplayName)
	assert.Equal(t, auth.MethodJWT, userCtx.Method)
}

func TestJWTManager_RejectsForeignTokens(t *testing.T) {
	manager := auth.NewJWTManager(testAuthConfig())
	user := testAdmin()

	t.Run("wrong secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = "other-secret"
		token, _, err := auth.NewJWTManager(cfg).Issue(user)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.Issuer = "someone-else"
		token, _, err := auth.NewJWTManager(cfg).Issue(user)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := auth.Claims{
			Email: user.Email,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   user.ID.String(),
				Issuer:    "harvest-test",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String(), Issuer: "harvest-test"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func newTestMiddleware(apiKey string) (*auth.Middleware, *auth.JWTManager) {
	manager := auth.NewJWTManager(testAuthConfig())
	return auth.NewMiddleware(manager, apiKey, zap.NewNop()), manager
}

func serve(t *testing.T, handler http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestMiddleware_Authenticate(t *testing.T) {
	const apiKey = "test-api-key-12345"
	middleware, manager := newTestMiddleware(apiKey)

	var captured *auth.UserContext
	protected := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("api key", func(t *testing.T) {
		captured = nil
		w := serve(t, protected, map[string]string{"x-api-key": apiKey})
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured)
		assert.True(t, captured.IsSystem())
		assert.Equal(t, auth.SystemUserID, captured.UserID)
	})

	t.Run("wrong api key", func(t *testing.T) {
		w := serve(t, protected, map[string]string{"x-api-key": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrorTypeUnauthorized)
	})

	t.Run("bearer token", func(t *testing.T) {
		captured = nil
		user := testAdmin()
		token, _, err := manager.Issue(user)
		require.NoError(t, err)

		w := serve(t, protected, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured)
		assert.Equal(t, user.ID, captured.UserID)
		assert.False(t, captured.IsSystem())
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(t, protected, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("malformed header", func(t *testing.T) {
		w := serve(t, protected, map[string]string{"Authorization": "Basic abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMiddleware_EmptyAPIKeyNeverMatches(t *testing.T) {
	middleware, _ := newTestMiddleware("")
	protected := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := serve(t, protected, map[string]string{"x-api-key": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_RequireUser(t *testing.T) {
	const apiKey = "k"
	middleware, manager := newTestMiddleware(apiKey)
	handler := middleware.Authenticate(middleware.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	w := serve(t, handler, map[string]string{"x-api-key": apiKey})
	assert.Equal(t, http.StatusForbidden, w.Code)

	token, _, err := manager.Issue(testAdmin())
	require.NoError(t, err)
	w = serve(t, handler, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

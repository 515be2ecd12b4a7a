package handler

import (
	"net/http"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login godoc
// @Summary Sign in as an admin
// @Description Returns a bearer token for the admin API. Rate limited per client IP.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "sign in")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, resp)
}

// Me godoc
// @Summary Get current authenticated admin
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.AdminUserDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "get current user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change the signed-in admin's password
// @Description Not available to API key callers.
// @Tags Auth
// @Accept json
// @Param request body domain.ChangePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Security BearerAuth
// @Router /admin/users/me/password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.authService.ChangePassword(r.Context(), &req); err != nil {
		respondServiceError(w, h.logger, err, "change password")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

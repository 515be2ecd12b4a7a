package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compared against when the email is unknown so both paths cost one bcrypt round
func getDummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("harvest-export-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// AuthService handles admin accounts and sign-in
type AuthService struct {
	userRepo *repository.AdminUserRepository
	tokens   *auth.JWTManager
	logger   *zap.Logger
	cost     int
	now      func() time.Time
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repository.AdminUserRepository, tokens *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		cost:     bcrypt.DefaultCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Login checks credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get admin user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(getDummyHash(), []byte(req.Password))
		s.logger.Info("login failed", zap.String("reason", "unknown email"))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login failed", zap.String("reason", "wrong password"), zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Info("login failed", zap.String("reason", "inactive"), zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}

	s.logger.Info("admin logged in", zap.String("user_id", user.ID.String()))

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      mapper.ToAdminUserDTO(user),
	}, nil
}

// Me returns the signed-in admin
func (s *AuthService) Me(ctx context.Context) (*domain.AdminUserDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	if userCtx.IsSystem() {
		return &domain.AdminUserDTO{ID: userCtx.UserID, Name: userCtx.DisplayName, IsActive: true}, nil
	}

	user, err := s.userRepo.GetByID(ctx, userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	dto := mapper.ToAdminUserDTO(user)
	return &dto, nil
}

// CreateAdmin adds an active admin account
func (s *AuthService) CreateAdmin(ctx context.Context, email, name, password string) (*domain.AdminUserDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		name = email
	}

	user := &domain.AdminUser{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAdminAlreadyExists
		}
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	s.logger.Info("admin user created", zap.String("user_id", user.ID.String()))

	dto := mapper.ToAdminUserDTO(user)
	return &dto, nil
}

// SetPassword replaces the password of the admin with email
func (s *AuthService) SetPassword(ctx context.Context, email, password string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return translateRepoError(err, "get admin user")
	}
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update admin user: %w", err)
	}
	s.logger.Info("admin password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// ChangePassword replaces the password of the signed-in admin after checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error {
	userCtx, ok := auth.FromContext(ctx)
	if !ok || userCtx.IsSystem() {
		return ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to get admin user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Info("password change rejected", zap.String("user_id", user.ID.String()))
		return ErrInvalidCredentials
	}

	hash, err := s.hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update admin user: %w", err)
	}
	s.logger.Info("admin password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// GetByID returns an admin account
func (s *AuthService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get admin user")
	}
	dto := mapper.ToAdminUserDTO(user)
	return &dto, nil
}

func (s *AuthService) hash(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

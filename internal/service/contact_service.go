package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

// ClientInfo describes who submitted a public form
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// ContactService handles inquiries from the public contact form
type ContactService struct {
	messageRepo *repository.ContactMessageRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewContactService creates a new contact service instance
func NewContactService(messageRepo *repository.ContactMessageRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a contact form submission
func (s *ContactService) Submit(ctx context.Context, req *domain.ContactRequest, lang domain.Language, client ClientInfo) (*domain.ContactMessageDTO, error) {
	message := &domain.ContactMessage{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		Country:   strings.TrimSpace(req.Country),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Language:  string(lang),
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
	if message.Language == "" {
		message.Language = string(domain.LanguageEnglish)
	}
	if message.Name == "" || message.Message == "" {
		return nil, fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	s.logger.Info("contact message received",
		zap.String("id", message.ID.String()),
		zap.String("language", message.Language),
		zap.String("ip", client.IPAddress))

	dto := mapper.ToContactMessageDTO(message)
	return &dto, nil
}

// GetByID retrieves a message by ID
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessageDTO, error) {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get contact message")
	}
	dto := mapper.ToContactMessageDTO(message)
	return &dto, nil
}

// List returns a page of messages, newest first
func (s *ContactService) List(ctx context.Context, page, pageSize int, filters *domain.ContactMessageFilters) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	messages, total, err := s.messageRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	dtos := make([]domain.ContactMessageDTO, len(messages))
	for i := range messages {
		dtos[i] = mapper.ToContactMessageDTO(&messages[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// MarkRead flags a message as read or unread
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*domain.ContactMessageDTO, error) {
	if err := s.messageRepo.MarkRead(ctx, id, read, s.now()); err != nil {
		return nil, translateRepoError(err, "mark contact message")
	}
	return s.GetByID(ctx, id)
}

// Delete removes a message
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "delete contact message")
	}
	return nil
}

// CountUnread returns the number of unread messages
func (s *ContactService) CountUnread(ctx context.Context) (int64, error) {
	count, err := s.messageRepo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// PurgeRead deletes read messages older than retention
func (s *ContactService) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	count, err := s.messageRepo.DeleteReadBefore(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to purge read messages: %w", err)
	}
	if count > 0 {
		s.logger.Info("purged read contact messages", zap.Int64("count", count), zap.Duration("retention", retention))
	}
	return count, nil
}

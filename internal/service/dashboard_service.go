package service

import (
	"context"
	"fmt"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

const dashboardRecentLimit = 5

// DashboardService aggregates content counts for the admin landing screen
type DashboardService struct {
	productRepo  *repository.ProductRepository
	categoryRepo *repository.CategoryRepository
	postRepo     *repository.BlogPostRepository
	countryRepo  *repository.ExportCountryRepository
	messageRepo  *repository.ContactMessageRepository
	auditRepo    *repository.AuditLogRepository
	logger       *zap.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	productRepo *repository.ProductRepository,
	categoryRepo *repository.CategoryRepository,
	postRepo *repository.BlogPostRepository,
	countryRepo *repository.ExportCountryRepository,
	messageRepo *repository.ContactMessageRepository,
	auditRepo *repository.AuditLogRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		countryRepo:  countryRepo,
		messageRepo:  messageRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// GetMetrics returns the dashboard summary
func (s *DashboardService) GetMetrics(ctx context.Context) (*domain.DashboardDTO, error) {
	dto := &domain.DashboardDTO{
		RecentMessages: []domain.ContactMessageDTO{},
		RecentActivity: []domain.AuditLogDTO{},
	}

	counts := []struct {
		name  string
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{"products", &dto.Products, func(ctx context.Context) (int64, error) { return s.productRepo.Count(ctx, false) }},
		{"active products", &dto.ActiveProducts, func(ctx context.Context) (int64, error) { return s.productRepo.Count(ctx, true) }},
		{"categories", &dto.Categories, s.categoryRepo.Count},
		{"published posts", &dto.PublishedPosts, func(ctx context.Context) (int64, error) {
			return s.postRepo.CountByStatus(ctx, domain.BlogPostStatusPublished)
		}},
		{"scheduled posts", &dto.ScheduledPosts, func(ctx context.Context) (int64, error) {
			return s.postRepo.CountByStatus(ctx, domain.BlogPostStatusScheduled)
		}},
		{"draft posts", &dto.DraftPosts, func(ctx context.Context) (int64, error) {
			return s.postRepo.CountByStatus(ctx, domain.BlogPostStatusDraft)
		}},
		{"countries", &dto.Countries, s.countryRepo.Count},
		{"messages", &dto.Messages, s.messageRepo.Count},
		{"unread messages", &dto.UnreadMessages, s.messageRepo.CountUnread},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	messages, err := s.messageRepo.ListRecent(ctx, dashboardRecentLimit)
	if err != nil {
		s.logger.Warn("failed to load recent messages", zap.Error(err))
	}
	for i := range messages {
		dto.RecentMessages = append(dto.RecentMessages, mapper.ToContactMessageDTO(&messages[i]))
	}

	logs, err := s.auditRepo.ListRecent(ctx, dashboardRecentLimit)
	if err != nil {
		s.logger.Warn("failed to load recent activity", zap.Error(err))
	}
	for i := range logs {
		dto.RecentActivity = append(dto.RecentActivity, mapper.ToAuditLogDTO(&logs[i]))
	}

	return dto, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/content"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

const excerptLength = 220

// BlogPostService handles business logic for blog posts
type BlogPostService struct {
	postRepo *repository.BlogPostRepository
	renderer *content.Renderer
	logger   *zap.Logger
	now      func() time.Time
}

// NewBlogPostService creates a new blog post service instance
func NewBlogPostService(postRepo *repository.BlogPostRepository, renderer *content.Renderer, logger *zap.Logger) *BlogPostService {
	return &BlogPostService{
		postRepo: postRepo,
		renderer: renderer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create creates a new blog post
func (s *BlogPostService) Create(ctx context.Context, req *domain.BlogPostRequest) (*domain.BlogPostDTO, error) {
	slug, err := resolveSlug(ctx, req.Slug, req.Title, nil, s.postRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	post := &domain.BlogPost{Slug: slug}
	applyBlogPostRequest(post, req)
	if err := s.applyStatus(post, req); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, translateRepoError(err, "create blog post")
	}

	s.logger.Info("blog post created",
		zap.String("id", post.ID.String()),
		zap.String("slug", post.Slug),
		zap.String("status", string(post.Status)))

	dto := mapper.ToBlogPostDTO(post)
	return &dto, nil
}

// GetByID retrieves a post by ID regardless of its status
func (s *BlogPostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get blog post")
	}
	dto := mapper.ToBlogPostDTO(post)
	return &dto, nil
}

// Update replaces the editable fields of a post
func (s *BlogPostService) Update(ctx context.Context, id uuid.UUID, req *domain.BlogPostRequest) (*domain.BlogPostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get blog post")
	}

	if req.Slug != "" && req.Slug != post.Slug {
		slug, err := resolveSlug(ctx, req.Slug, req.Title, &id, s.postRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}
	applyBlogPostRequest(post, req)
	if err := s.applyStatus(post, req); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, translateRepoError(err, "update blog post")
	}

	dto := mapper.ToBlogPostDTO(post)
	return &dto, nil
}

// Delete removes a post and its homepage placement
func (s *BlogPostService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "delete blog post")
	}
	s.logger.Info("blog post deleted", zap.String("id", id.String()))
	return nil
}

// List returns a page of posts in any status for the admin panel
func (s *BlogPostService) List(ctx context.Context, page, pageSize int, filters *domain.BlogPostFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	posts, total, err := s.postRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	dtos := make([]domain.BlogPostDTO, len(posts))
	for i := range posts {
		dtos[i] = mapper.ToBlogPostDTO(&posts[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// ListPublic returns a page of visible posts resolved to lang, without bodies
func (s *BlogPostService) ListPublic(ctx context.Context, page, pageSize int, lang domain.Language) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	posts, total, err := s.postRepo.ListPublished(ctx, s.now(), page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	resp := domain.NewPaginatedResponse(s.toPublicList(posts, lang), total, page, pageSize)
	return &resp, nil
}

// GetPublicBySlug returns a visible post with its body rendered to sanitised HTML
func (s *BlogPostService) GetPublicBySlug(ctx context.Context, slug string, lang domain.Language) (*domain.PublicBlogPostDTO, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, slug, s.now())
	if err != nil {
		return nil, translateRepoError(err, "get blog post")
	}

	html, err := s.renderer.Render(domain.Localize(lang, post.Content, post.ContentAr))
	if err != nil {
		return nil, fmt.Errorf("failed to render blog post: %w", err)
	}

	dto := mapper.ToPublicBlogPostDTO(post, lang, html)
	if dto.Excerpt == "" {
		dto.Excerpt = s.excerpt(post, lang)
	}
	return &dto, nil
}

// PublishScheduled publishes every scheduled post whose time has come
func (s *BlogPostService) PublishScheduled(ctx context.Context) (int64, error) {
	count, err := s.postRepo.PublishDue(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to publish scheduled posts: %w", err)
	}
	if count > 0 {
		s.logger.Info("published scheduled blog posts", zap.Int64("count", count))
	}
	return count, nil
}

func (s *BlogPostService) toPublicList(posts []domain.BlogPost, lang domain.Language) []domain.PublicBlogPostDTO {
	dtos := make([]domain.PublicBlogPostDTO, len(posts))
	for i := range posts {
		dtos[i] = mapper.ToPublicBlogPostDTO(&posts[i], lang, "")
		if dtos[i].Excerpt == "" {
			dtos[i].Excerpt = s.excerpt(&posts[i], lang)
		}
	}
	return dtos
}

func (s *BlogPostService) excerpt(post *domain.BlogPost, lang domain.Language) string {
	text, err := s.renderer.Excerpt(domain.Localize(lang, post.Content, post.ContentAr), excerptLength)
	if err != nil {
		s.logger.Warn("failed to build excerpt", zap.String("slug", post.Slug), zap.Error(err))
		return ""
	}
	return text
}

// applyStatus enforces the publication rules:
// draft clears published_at, scheduled needs a publish time (a past one publishes now),
// published with a future publish time is scheduled, otherwise it keeps the first publication time.
func (s *BlogPostService) applyStatus(post *domain.BlogPost, req *domain.BlogPostRequest) error {
	status := req.Status
	if status == "" {
		status = domain.BlogPostStatusDraft
	}

	var publishAt *time.Time
	if strings.TrimSpace(req.PublishAt) != "" {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(req.PublishAt))
		if err != nil {
			return ErrInvalidPublishAt
		}
		t = t.UTC()
		publishAt = &t
	}

	now := s.now()
	// publishing with a future date waits for that date
	if status == domain.BlogPostStatusPublished && publishAt != nil && publishAt.After(now) {
		status = domain.BlogPostStatusScheduled
	}

	switch status {
	case domain.BlogPostStatusDraft:
		post.Status = domain.BlogPostStatusDraft
		post.PublishAt = publishAt
		post.PublishedAt = nil

	case domain.BlogPostStatusScheduled:
		if publishAt == nil {
			return ErrPublishAtRequired
		}
		post.PublishAt = publishAt
		if publishAt.After(now) {
			post.Status = domain.BlogPostStatusScheduled
			post.PublishedAt = nil
		} else {
			post.Status = domain.BlogPostStatusPublished
			post.PublishedAt = publishAt
		}

	case domain.BlogPostStatusPublished:
		post.Status = domain.BlogPostStatusPublished
		post.PublishAt = publishAt
		switch {
		case publishAt != nil:
			post.PublishedAt = publishAt
		case post.PublishedAt == nil || post.PublishedAt.After(now):
			post.PublishedAt = &now
		}

	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return nil
}

func applyBlogPostRequest(post *domain.BlogPost, req *domain.BlogPostRequest) {
	post.Title = strings.TrimSpace(req.Title)
	post.TitleAr = strings.TrimSpace(req.TitleAr)
	post.Excerpt = req.Excerpt
	post.ExcerptAr = req.ExcerptAr
	post.Content = req.Content
	post.ContentAr = req.ContentAr
	post.CoverImageURL = req.CoverImageURL
	post.Author = req.Author
}

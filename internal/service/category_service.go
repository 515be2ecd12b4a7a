package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

// CategoryService handles business logic for product categories
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req *domain.CategoryRequest) (*domain.CategoryDTO, error) {
	slug, err := resolveSlug(ctx, req.Slug, req.Name, nil, s.categoryRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{Slug: slug}
	applyCategoryRequest(category, req)

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateRepoError(err, "create category")
	}

	s.logger.Info("category created", zap.String("id", category.ID.String()), zap.String("slug", category.Slug))

	dto := mapper.ToCategoryDTO(category)
	return &dto, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CategoryDTO, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get category")
	}
	dto := mapper.ToCategoryDTO(category)
	return &dto, nil
}

// Update replaces the editable fields of a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req *domain.CategoryRequest) (*domain.CategoryDTO, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get category")
	}

	if req.Slug != "" && req.Slug != category.Slug {
		slug, err := resolveSlug(ctx, req.Slug, req.Name, &id, s.categoryRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
	}
	applyCategoryRequest(category, req)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateRepoError(err, "update category")
	}

	dto := mapper.ToCategoryDTO(category)
	return &dto, nil
}

// Delete removes a category. Its products stay in the catalog without a category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "delete category")
	}
	s.logger.Info("category deleted", zap.String("id", id.String()))
	return nil
}

// List returns a page of categories for the admin panel
func (s *CategoryService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	categories, total, err := s.categoryRepo.List(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	dtos := make([]domain.CategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = mapper.ToCategoryDTO(&categories[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// ListPublic returns the active categories resolved to lang
func (s *CategoryService) ListPublic(ctx context.Context, lang domain.Language) ([]domain.PublicCategoryDTO, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	dtos := make([]domain.PublicCategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = mapper.ToPublicCategoryDTO(&categories[i], lang)
	}
	return dtos, nil
}

// GetPublicBySlug returns an active category resolved to lang
func (s *CategoryService) GetPublicBySlug(ctx context.Context, slug string, lang domain.Language) (*domain.PublicCategoryDTO, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, translateRepoError(err, "get category")
	}
	if !category.IsActive {
		return nil, ErrNotFound
	}
	dto := mapper.ToPublicCategoryDTO(category, lang)
	return &dto, nil
}

func applyCategoryRequest(category *domain.Category, req *domain.CategoryRequest) {
	category.Name = strings.TrimSpace(req.Name)
	category.NameAr = strings.TrimSpace(req.NameAr)
	category.Description = req.Description
	category.DescriptionAr = req.DescriptionAr
	category.ImageURL = req.ImageURL
	category.SortOrder = req.SortOrder
	category.IsActive = req.IsActive
}

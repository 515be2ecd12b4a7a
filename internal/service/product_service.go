package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductService handles business logic for catalog products
type ProductService struct {
	productRepo  *repository.ProductRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo *repository.ProductRepository,
	categoryRepo *repository.CategoryRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req *domain.ProductRequest) (*domain.ProductDTO, error) {
	category, err := s.lookupCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	slug, err := resolveSlug(ctx, req.Slug, req.Name, nil, s.productRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{Slug: slug}
	applyProductRequest(product, req)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, translateRepoError(err, "create product")
	}
	product.Category = category

	s.logger.Info("product created", zap.String("id", product.ID.String()), zap.String("slug", product.Slug))

	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductDTO, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get product")
	}
	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

// Update replaces the editable fields of a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *domain.ProductRequest) (*domain.ProductDTO, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get product")
	}

	category, err := s.lookupCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if req.Slug != "" && req.Slug != product.Slug {
		slug, err := resolveSlug(ctx, req.Slug, req.Name, &id, s.productRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}
	applyProductRequest(product, req)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, translateRepoError(err, "update product")
	}
	product.Category = category

	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

// Delete removes a product and its homepage placements
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "delete product")
	}
	s.logger.Info("product deleted", zap.String("id", id.String()))
	return nil
}

// List returns a page of products for the admin panel
func (s *ProductService) List(ctx context.Context, page, pageSize int, filters *domain.ProductFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	products, total, err := s.productRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	dtos := make([]domain.ProductDTO, len(products))
	for i := range products {
		dtos[i] = mapper.ToProductDTO(&products[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// ListPublic returns active products resolved to lang, optionally for one category slug.
// An unknown or inactive category yields ErrNotFound.
func (s *ProductService) ListPublic(ctx context.Context, categorySlug string, lang domain.Language) ([]domain.PublicProductDTO, error) {
	var categoryID *uuid.UUID
	if categorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
		if err != nil {
			return nil, translateRepoError(err, "get category")
		}
		if !category.IsActive {
			return nil, ErrNotFound
		}
		categoryID = &category.ID
	}

	products, err := s.productRepo.ListActive(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	dtos := make([]domain.PublicProductDTO, len(products))
	for i := range products {
		hideInactiveCategory(&products[i])
		dtos[i] = mapper.ToPublicProductDTO(&products[i], lang)
	}
	return dtos, nil
}

// hideInactiveCategory drops a hidden category so public views never name it
func hideInactiveCategory(p *domain.Product) {
	if p.Category != nil && !p.Category.IsActive {
		p.Category = nil
	}
}

// GetPublicBySlug returns an active product resolved to lang
func (s *ProductService) GetPublicBySlug(ctx context.Context, slug string, lang domain.Language) (*domain.PublicProductDTO, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, translateRepoError(err, "get product")
	}
	if !product.IsActive {
		return nil, ErrNotFound
	}
	hideInactiveCategory(product)
	dto := mapper.ToPublicProductDTO(product, lang)
	return &dto, nil
}

func (s *ProductService) lookupCategory(ctx context.Context, id *uuid.UUID) (*domain.Category, error) {
	if id == nil {
		return nil, nil
	}
	category, err := s.categoryRepo.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func applyProductRequest(product *domain.Product, req *domain.ProductRequest) {
	product.CategoryID = req.CategoryID
	product.Name = strings.TrimSpace(req.Name)
	product.NameAr = strings.TrimSpace(req.NameAr)
	product.Summary = req.Summary
	product.SummaryAr = req.SummaryAr
	product.Description = req.Description
	product.DescriptionAr = req.DescriptionAr
	product.Origin = req.Origin
	product.OriginAr = req.OriginAr
	product.Season = req.Season
	product.Packaging = req.Packaging
	product.ImageURL = req.ImageURL
	product.IsFeatured = req.IsFeatured
	product.IsActive = req.IsActive
	product.SortOrder = req.SortOrder
	product.Category = nil
}

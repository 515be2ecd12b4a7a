package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var productSortFields = map[string]string{
	"name":       "products.name",
	"slug":       "products.slug",
	"sortOrder":  "products.sort_order",
	"isFeatured": "products.is_featured",
	"createdAt":  "products.created_at",
	"updatedAt":  "products.updated_at",
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs returns the products with the given IDs in no particular order
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	var products []domain.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).Preload("Category").Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// Delete removes a product and its homepage rows
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWithCuration(r.db.WithContext(ctx), &domain.Product{}, domain.HomepageSectionProducts, id)
}

func (r *ProductRepository) List(ctx context.Context, page, pageSize int, filters *domain.ProductFilters, sort SortConfig) ([]domain.Product, int64, error) {
	var products []domain.Product
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Product{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Preload("Category").
		Order(BuildOrderClause(sort, productSortFields, "products.updated_at")).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) applyFilters(query *gorm.DB, filters *domain.ProductFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.Featured != nil {
		query = query.Where("products.is_featured = ?", *filters.Featured)
	}
	if filters.Active != nil {
		query = query.Where("products.is_active = ?", *filters.Active)
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.name_ar) LIKE ? OR LOWER(products.summary) LIKE ? OR LOWER(products.origin) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	return query
}

// ListActive returns every active product in display order, optionally restricted to a category
func (r *ProductRepository) ListActive(ctx context.Context, categoryID *uuid.UUID) ([]domain.Product, error) {
	var products []domain.Product
	query := r.db.WithContext(ctx).Preload("Category").Where("is_active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("sort_order ASC, name ASC").Find(&products).Error
	return products, err
}

// SlugExists reports whether another product already uses slug
func (r *ProductRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Count returns the number of products, only active ones when activeOnly is set
func (r *ProductRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}

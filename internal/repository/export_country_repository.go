package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
)

type ExportCountryRepository struct {
	db *gorm.DB
}

func NewExportCountryRepository(db *gorm.DB) *ExportCountryRepository {
	return &ExportCountryRepository{db: db}
}

var countrySortFields = map[string]string{
	"name":      "name",
	"code":      "code",
	"region":    "region",
	"sortOrder": "sort_order",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (r *ExportCountryRepository) Create(ctx context.Context, country *domain.ExportCountry) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *ExportCountryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportCountry, error) {
	var country domain.ExportCountry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *ExportCountryRepository) GetByCode(ctx context.Context, code string) (*domain.ExportCountry, error) {
	var country domain.ExportCountry
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// GetByIDs returns the countries with the given IDs in no particular order
func (r *ExportCountryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ExportCountry, error) {
	var countries []domain.ExportCountry
	if len(ids) == 0 {
		return countries, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&countries).Error
	return countries, err
}

func (r *ExportCountryRepository) Update(ctx context.Context, country *domain.ExportCountry) error {
	return r.db.WithContext(ctx).Save(country).Error
}

// Delete removes a country and its homepage rows
func (r *ExportCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWithCuration(r.db.WithContext(ctx), &domain.ExportCountry{}, domain.HomepageSectionCountries, id)
}

func (r *ExportCountryRepository) List(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.ExportCountry, int64, error) {
	var countries []domain.ExportCountry
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.ExportCountry{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(code) LIKE ? OR LOWER(region) LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Order(BuildOrderClause(sort, countrySortFields, "updated_at")).
		Find(&countries).Error
	return countries, total, err
}

// ListActive returns every active country in display order
func (r *ExportCountryRepository) ListActive(ctx context.Context) ([]domain.ExportCountry, error) {
	var countries []domain.ExportCountry
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&countries).Error
	return countries, err
}

// CodeExists reports whether another country already uses code
func (r *ExportCountryRepository) CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.ExportCountry{}).Where("code = ?", code)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *ExportCountryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ExportCountry{}).Count(&count).Error
	return count, err
}

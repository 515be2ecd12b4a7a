package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *domain.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *MediaRepository) List(ctx context.Context, page, pageSize int) ([]domain.Media, int64, error) {
	var items []domain.Media
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Media{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).Order("created_at DESC").Find(&items).Error
	return items, total, err
}

func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Media{}, "id = ?", id).Error
}

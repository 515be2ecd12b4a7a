package repository

import (
	"context"

	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
)

type SiteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) *SiteSettingsRepository {
	return &SiteSettingsRepository{db: db}
}

// Get returns the settings row, creating it with defaults on first access
func (r *SiteSettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	settings := domain.DefaultSiteSettings()
	err := r.db.WithContext(ctx).
		Where("id = ?", domain.SiteSettingsID).
		FirstOrCreate(settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SiteSettingsRepository) Save(ctx context.Context, settings *domain.SiteSettings) error {
	settings.ID = domain.SiteSettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}

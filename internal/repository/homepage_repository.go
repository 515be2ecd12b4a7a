package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
)

// HomepageRepository manages the homepage curation rows
type HomepageRepository struct {
	db *gorm.DB
}

func NewHomepageRepository(db *gorm.DB) *HomepageRepository {
	return &HomepageRepository{db: db}
}

// ListBySection returns the curated rows of a section in display order
func (r *HomepageRepository) ListBySection(ctx context.Context, section domain.HomepageSection) ([]domain.HomepageItem, error) {
	var items []domain.HomepageItem
	err := r.db.WithContext(ctx).
		Where("section = ?", section).
		Order("display_order ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *HomepageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HomepageItem, error) {
	var item domain.HomepageItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Add appends an entity to the end of its section
func (r *HomepageRepository) Add(ctx context.Context, item *domain.HomepageItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextOrder(tx, item.Section)
		if err != nil {
			return err
		}
		item.DisplayOrder = next
		return tx.Create(item).Error
	})
}

// Remove deletes a curation row by its ID
func (r *HomepageRepository) Remove(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.HomepageItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveByEntity deletes the curation rows pointing at an entity
func (r *HomepageRepository) RemoveByEntity(ctx context.Context, section domain.HomepageSection, entityID uuid.UUID) error {
	return removeCurationRows(r.db.WithContext(ctx), section, entityID)
}

// Reorder sets display_order to each ID's position in ids. Either every row is updated or none.
func (r *HomepageRepository) Reorder(ctx context.Context, section domain.HomepageSection, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&domain.HomepageItem{}).
				Where("id = ? AND section = ?", id, section).
				Update("display_order", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// NextOrder returns the display order for a new row in section
func (r *HomepageRepository) NextOrder(ctx context.Context, section domain.HomepageSection) (int, error) {
	return nextOrder(r.db.WithContext(ctx), section)
}

func nextOrder(db *gorm.DB, section domain.HomepageSection) (int, error) {
	var maxOrder *int
	err := db.Model(&domain.HomepageItem{}).
		Where("section = ?", section).
		Select("MAX(display_order)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return 0, nil
	}
	return *maxOrder + 1, nil
}

func removeCurationRows(db *gorm.DB, section domain.HomepageSection, entityID uuid.UUID) error {
	return db.Where("section = ? AND entity_id = ?", section, entityID).
		Delete(&domain.HomepageItem{}).Error
}

// deleteWithCuration removes a row and its homepage references in one transaction
func deleteWithCuration(db *gorm.DB, model interface{}, section domain.HomepageSection, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := removeCurationRows(tx, section, id); err != nil {
			return err
		}
		result := tx.Delete(model, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

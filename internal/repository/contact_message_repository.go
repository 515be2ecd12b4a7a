package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	var message domain.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// List returns messages newest first
func (r *ContactMessageRepository) List(ctx context.Context, page, pageSize int, filters *domain.ContactMessageFilters) ([]domain.ContactMessage, int64, error) {
	var messages []domain.ContactMessage
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.ContactMessage{})
	if filters != nil {
		if filters.IsRead != nil {
			query = query.Where("is_read = ?", *filters.IsRead)
		}
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ? OR LOWER(subject) LIKE ?",
				pattern, pattern, pattern, pattern)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).Order("created_at DESC").Find(&messages).Error
	return messages, total, err
}

// ListRecent returns the latest messages
func (r *ContactMessageRepository) ListRecent(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

// MarkRead sets the read flag. ReadAt is cleared when read is false.
func (r *ContactMessageRepository) MarkRead(ctx context.Context, id uuid.UUID, read bool, at time.Time) error {
	updates := map[string]interface{}{"is_read": read, "read_at": nil, "updated_at": at}
	if read {
		updates["read_at"] = at
	}
	result := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (r *ContactMessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).Count(&count).Error
	return count, err
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteReadBefore purges read messages received before the cutoff
func (r *ContactMessageRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, before).
		Delete(&domain.ContactMessage{})
	return result.RowsAffected, result.Error
}

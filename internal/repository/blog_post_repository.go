package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"gorm.io/gorm"
)

type BlogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

var blogPostSortFields = map[string]string{
	"title":       "title",
	"status":      "status",
	"publishAt":   "publish_at",
	"publishedAt": "published_at",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

func (r *BlogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *BlogPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug returns a post only if it is visible at now
func (r *BlogPostRepository) GetPublishedBySlug(ctx context.Context, slug string, now time.Time) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.published(r.db.WithContext(ctx), now).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByIDs returns the posts with the given IDs in no particular order
func (r *BlogPostRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	if len(ids) == 0 {
		return posts, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error
	return posts, err
}

func (r *BlogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a post and its homepage rows
func (r *BlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWithCuration(r.db.WithContext(ctx), &domain.BlogPost{}, domain.HomepageSectionBlog, id)
}

func (r *BlogPostRepository) List(ctx context.Context, page, pageSize int, filters *domain.BlogPostFilters, sort SortConfig) ([]domain.BlogPost, int64, error) {
	var posts []domain.BlogPost
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.BlogPost{})
	if filters != nil {
		if filters.Status != "" {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(title) LIKE ? OR LOWER(title_ar) LIKE ? OR LOWER(excerpt) LIKE ?", pattern, pattern, pattern)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Order(BuildOrderClause(sort, blogPostSortFields, "updated_at")).
		Find(&posts).Error
	return posts, total, err
}

// ListPublished returns the posts visible at now, newest first
func (r *BlogPostRepository) ListPublished(ctx context.Context, now time.Time, page, pageSize int) ([]domain.BlogPost, int64, error) {
	var posts []domain.BlogPost
	var total int64

	query := r.published(r.db.WithContext(ctx).Model(&domain.BlogPost{}), now)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, total, err
}

func (r *BlogPostRepository) published(query *gorm.DB, now time.Time) *gorm.DB {
	return query.Where("status = ? AND published_at IS NOT NULL AND published_at <= ?", domain.BlogPostStatusPublished, now)
}

// PublishDue moves scheduled posts whose publish time has passed to published.
// published_at takes the scheduled time so ordering reflects the intended date.
func (r *BlogPostRepository) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.BlogPost{}).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", domain.BlogPostStatusScheduled, now).
		Updates(map[string]interface{}{
			"status":       domain.BlogPostStatusPublished,
			"published_at": gorm.Expr("publish_at"),
			"updated_at":   now,
		})
	return result.RowsAffected, result.Error
}

// SlugExists reports whether another post already uses slug
func (r *BlogPostRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.BlogPost{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// CountByStatus returns the number of posts in status
func (r *BlogPostRepository) CountByStatus(ctx context.Context, status domain.BlogPostStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.BlogPost{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

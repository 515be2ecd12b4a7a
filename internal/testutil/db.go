package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/database"
	"github.com/harvest-export/website/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var dbCounter atomic.Int64

// SetupTestDB opens a private in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(name), database.GormConfig())
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateTestCategory creates an active category and returns it
func CreateTestCategory(t *testing.T, db *gorm.DB, name, slug string) *domain.Category {
	t.Helper()
	category := &domain.Category{
		Name:     name,
		NameAr:   name + " (ar)",
		Slug:     slug,
		IsActive: true,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateTestProduct creates an active product, optionally in a category
func CreateTestProduct(t *testing.T, db *gorm.DB, name, slug string, categoryID *uuid.UUID) *domain.Product {
	t.Helper()
	product := &domain.Product{
		CategoryID: categoryID,
		Name:       name,
		NameAr:     name + " (ar)",
		Slug:       slug,
		Summary:    "Fresh " + name,
		IsActive:   true,
	}
	// Omit associations to avoid GORM upserting the category
	require.NoError(t, db.Omit(clause.Associations).Create(product).Error)
	return product
}

// CreateTestPost creates a post in the given status. Published posts get published_at one hour ago.
func CreateTestPost(t *testing.T, db *gorm.DB, title, slug string, status domain.BlogPostStatus) *domain.BlogPost {
	t.Helper()
	post := &domain.BlogPost{
		Title:   title,
		Slug:    slug,
		Content: "# " + title,
		Status:  status,
	}
	if status == domain.BlogPostStatusPublished {
		at := time.Now().UTC().Add(-time.Hour)
		post.PublishedAt = &at
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// CreateTestCountry creates an active export country
func CreateTestCountry(t *testing.T, db *gorm.DB, name, code string) *domain.ExportCountry {
	t.Helper()
	country := &domain.ExportCountry{
		Name:     name,
		Code:     code,
		IsActive: true,
	}
	require.NoError(t, db.Create(country).Error)
	return country
}

// CreateTestHomepageItem curates an entity into a section at the given order
func CreateTestHomepageItem(t *testing.T, db *gorm.DB, section domain.HomepageSection, entityID uuid.UUID, order int) *domain.HomepageItem {
	t.Helper()
	item := &domain.HomepageItem{
		Section:      section,
		EntityID:     entityID,
		DisplayOrder: order,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// CreateTestMessage creates a contact message
func CreateTestMessage(t *testing.T, db *gorm.DB, email string, read bool) *domain.ContactMessage {
	t.Helper()
	message := &domain.ContactMessage{
		Name:     "Buyer",
		Email:    email,
		Message:  "We would like a quote for dates.",
		Language: "en",
		IsRead:   read,
	}
	require.NoError(t, db.Create(message).Error)
	return message
}

package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sectionIDs(t *testing.T, repo *repository.HomepageRepository, section domain.HomepageSection) []uuid.UUID {
	t.Helper()
	items, err := repo.ListBySection(context.Background(), section)
	require.NoError(t, err)
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.EntityID
	}
	return ids
}

func TestHomepageRepository_AddAppendsInOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHomepageRepository(db)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	first := &domain.HomepageItem{Section: domain.HomepageSectionProducts, EntityID: a}
	second := &domain.HomepageItem{Section: domain.HomepageSectionProducts, EntityID: b}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	assert.Equal(t, 0, first.DisplayOrder)
	assert.Equal(t, 1, second.DisplayOrder)
	assert.Equal(t, []uuid.UUID{a, b}, sectionIDs(t, repo, domain.HomepageSectionProducts))

	next, err := repo.NextOrder(ctx, domain.HomepageSectionProducts)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	next, err = repo.NextOrder(ctx, domain.HomepageSectionBlog)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestHomepageRepository_AddDuplicateIsRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHomepageRepository(db)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, repo.Add(ctx, &domain.HomepageItem{Section: domain.HomepageSectionCountries, EntityID: id}))
	err := repo.Add(ctx, &domain.HomepageItem{Section: domain.HomepageSectionCountries, EntityID: id})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// the same entity may appear in another section
	require.NoError(t, repo.Add(ctx, &domain.HomepageItem{Section: domain.HomepageSectionProducts, EntityID: id}))
}

func TestHomepageRepository_Reorder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHomepageRepository(db)
	ctx := context.Background()

	a := testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionCategories, uuid.New(), 0)
	b := testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionCategories, uuid.New(), 1)
	c := testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionCategories, uuid.New(), 2)

	require.NoError(t, repo.Reorder(ctx, domain.HomepageSectionCategories, []uuid.UUID{c.ID, a.ID, b.ID}))

	items, err := repo.ListBySection(ctx, domain.HomepageSectionCategories)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, c.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)
	assert.Equal(t, b.ID, items[2].ID)
	for i, item := range items {
		assert.Equal(t, i, item.DisplayOrder)
	}
}

func TestHomepageRepository_ReorderRollsBackOnUnknownID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHomepageRepository(db)
	ctx := context.Background()

	a := testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionBlog, uuid.New(), 0)
	b := testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionBlog, uuid.New(), 1)

	err := repo.Reorder(ctx, domain.HomepageSectionBlog, []uuid.UUID{b.ID, uuid.New(), a.ID})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	items, err := repo.ListBySection(ctx, domain.HomepageSectionBlog)
	require.NoError(t, err)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, 0, items[0].DisplayOrder)
	assert.Equal(t, b.ID, items[1].ID)
	assert.Equal(t, 1, items[1].DisplayOrder)
}

func TestHomepageRepository_Remove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHomepageRepository(db)
	ctx := context.Background()

	item := testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionProducts, uuid.New(), 0)
	require.NoError(t, repo.Remove(ctx, item.ID))
	assert.ErrorIs(t, repo.Remove(ctx, item.ID), gorm.ErrRecordNotFound)

	entity := uuid.New()
	testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionProducts, entity, 0)
	require.NoError(t, repo.RemoveByEntity(ctx, domain.HomepageSectionProducts, entity))
	assert.Empty(t, sectionIDs(t, repo, domain.HomepageSectionProducts))
}

func TestDeletingEntitiesRemovesCuration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	homepage := repository.NewHomepageRepository(db)

	category := testutil.CreateTestCategory(t, db, "Fruit", "fruit")
	product := testutil.CreateTestProduct(t, db, "Dates", "dates", &category.ID)
	post := testutil.CreateTestPost(t, db, "Harvest", "harvest", domain.BlogPostStatusPublished)
	country := testutil.CreateTestCountry(t, db, "Germany", "DE")

	testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionCategories, category.ID, 0)
	testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionProducts, product.ID, 0)
	testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionBlog, post.ID, 0)
	testutil.CreateTestHomepageItem(t, db, domain.HomepageSectionCountries, country.ID, 0)

	require.NoError(t, repository.NewProductRepository(db).Delete(ctx, product.ID))
	require.NoError(t, repository.NewCategoryRepository(db).Delete(ctx, category.ID))
	require.NoError(t, repository.NewBlogPostRepository(db).Delete(ctx, post.ID))
	require.NoError(t, repository.NewExportCountryRepository(db).Delete(ctx, country.ID))

	for _, section := range domain.HomepageSections {
		assert.Empty(t, sectionIDs(t, homepage, section), section)
	}
}

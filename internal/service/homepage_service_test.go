package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productNames(items []domain.PublicProductDTO) []string {
	names := make([]string, len(items))
	for i, p := range items {
		names[i] = p.Name
	}
	return names
}

func TestHomepageService_AddValidatesEntity(t *testing.T) {
	s := newTestServices(t)
	product := testutil.CreateTestProduct(t, s.db, "Dates", "dates", nil)

	item, err := s.homepage.Add(ctx(), &domain.AddHomepageItemRequest{Section: domain.HomepageSectionProducts, EntityID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, "Dates", item.Label)
	assert.Equal(t, 0, item.DisplayOrder)

	_, err = s.homepage.Add(ctx(), &domain.AddHomepageItemRequest{Section: domain.HomepageSectionProducts, EntityID: product.ID})
	assert.ErrorIs(t, err, ErrAlreadyCurated)

	// a product ID is not a category
	_, err = s.homepage.Add(ctx(), &domain.AddHomepageItemRequest{Section: domain.HomepageSectionCategories, EntityID: product.ID})
	assert.ErrorIs(t, err, ErrEntityNotFound)

	_, err = s.homepage.Add(ctx(), &domain.AddHomepageItemRequest{Section: "footer", EntityID: product.ID})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestHomepageService_Reorder(t *testing.T) {
	s := newTestServices(t)
	var ids []uuid.UUID
	for _, name := range []string{"A", "B", "C"} {
		p := testutil.CreateTestProduct(t, s.db, name, name, nil)
		item, err := s.homepage.Add(ctx(), &domain.AddHomepageItemRequest{Section: domain.HomepageSectionProducts, EntityID: p.ID})
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	reordered, err := s.homepage.Reorder(ctx(), &domain.ReorderHomepageRequest{
		Section: domain.HomepageSectionProducts,
		IDs:     []uuid.UUID{ids[2], ids[0], ids[1]},
	})
	require.NoError(t, err)
	require.Len(t, reordered, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{reordered[0].Label, reordered[1].Label, reordered[2].Label})
	for i, item := range reordered {
		assert.Equal(t, i, item.DisplayOrder)
	}

	_, err = s.homepage.Reorder(ctx(), &domain.ReorderHomepageRequest{
		Section: domain.HomepageSectionProducts,
		IDs:     []uuid.UUID{ids[0], ids[1]},
	})
	assert.ErrorIs(t, err, ErrReorderMismatch)

	_, err = s.homepage.Reorder(ctx(), &domain.ReorderHomepageRequest{
		Section: domain.HomepageSectionProducts,
		IDs:     []uuid.UUID{ids[0], ids[0], ids[1]},
	})
	assert.ErrorIs(t, err, ErrReorderMismatch)

	// rejected requests leave the order untouched
	current, err := s.homepage.ListSection(ctx(), domain.HomepageSectionProducts)
	require.NoError(t, err)
	assert.Equal(t, "C", current[0].Label)
}

func TestHomepageService_ListSectionMarksMissing(t *testing.T) {
	s := newTestServices(t)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionBlog, uuid.New(), 0)

	items, err := s.homepage.ListSection(ctx(), domain.HomepageSectionBlog)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Missing)
	assert.Empty(t, items[0].Label)
}

func TestHomepageService_ResolveCurated(t *testing.T) {
	s := newTestServices(t)
	a := testutil.CreateTestProduct(t, s.db, "Apricots", "apricots", nil)
	b := testutil.CreateTestProduct(t, s.db, "Bananas", "bananas", nil)
	inactive := testutil.CreateTestProduct(t, s.db, "Inactive", "inactive", nil)
	require.NoError(t, s.db.Model(inactive).Update("is_active", false).Error)

	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionProducts, b.ID, 0)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionProducts, uuid.New(), 1)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionProducts, inactive.ID, 2)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionProducts, a.ID, 3)

	published := testutil.CreateTestPost(t, s.db, "Published", "published", domain.BlogPostStatusPublished)
	draft := testutil.CreateTestPost(t, s.db, "Draft", "draft", domain.BlogPostStatusDraft)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionBlog, draft.ID, 0)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionBlog, published.ID, 1)

	page, err := s.homepage.Resolve(ctx(), domain.LanguageArabic)
	require.NoError(t, err)
	assert.Equal(t, "rtl", page.Direction)
	assert.Equal(t, []string{"Bananas (ar)", "Apricots (ar)"}, productNames(page.Products))
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "published", page.Posts[0].Slug)
}

func TestHomepageService_ResolveFallbacks(t *testing.T) {
	s := newTestServices(t)
	testutil.CreateTestCategory(t, s.db, "Dates", "dates")
	testutil.CreateTestCountry(t, s.db, "Germany", "DE")
	plain := testutil.CreateTestProduct(t, s.db, "Plain", "plain", nil)
	featured := testutil.CreateTestProduct(t, s.db, "Featured", "featured", nil)
	require.NoError(t, s.db.Model(featured).Update("is_featured", true).Error)
	for _, slug := range []string{"one", "two", "three", "four"} {
		testutil.CreateTestPost(t, s.db, slug, slug, domain.BlogPostStatusPublished)
	}

	page, err := s.homepage.Resolve(ctx(), domain.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "ltr", page.Direction)
	assert.Len(t, page.Categories, 1)
	assert.Len(t, page.Countries, 1)
	assert.Equal(t, []string{"Featured"}, productNames(page.Products))
	assert.NotContains(t, productNames(page.Products), plain.Name)
	assert.Len(t, page.Posts, fallbackPostLimit)
}

func TestHomepageService_EmptySite(t *testing.T) {
	s := newTestServices(t)

	page, err := s.homepage.Resolve(ctx(), domain.LanguageEnglish)
	require.NoError(t, err)
	assert.NotNil(t, page.Categories)
	assert.NotNil(t, page.Products)
	assert.NotNil(t, page.Countries)
	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Products)
}

func TestHomepageService_DeletingEntityRemovesPlacement(t *testing.T) {
	s := newTestServices(t)
	product := testutil.CreateTestProduct(t, s.db, "Figs", "figs", nil)
	country := testutil.CreateTestCountry(t, s.db, "Jordan", "JO")
	post := testutil.CreateTestPost(t, s.db, "Harvest report", "harvest-report", domain.BlogPostStatusPublished)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionProducts, product.ID, 0)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionCountries, country.ID, 0)
	testutil.CreateTestHomepageItem(t, s.db, domain.HomepageSectionBlog, post.ID, 0)

	require.NoError(t, s.products.Delete(ctx(), product.ID))
	require.NoError(t, s.countries.Delete(ctx(), country.ID))
	require.NoError(t, s.posts.Delete(ctx(), post.ID))

	var remaining int64
	require.NoError(t, s.db.Model(&domain.HomepageItem{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

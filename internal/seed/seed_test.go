package seed

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("categories:\n  - name: Citrus\n    colour: orange\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Categories)
}

func TestApply_Catalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seeder := NewSeeder(db, zap.NewNop())
	ctx := context.Background()

	f, err := ParseFile("testdata/catalog.yaml")
	require.NoError(t, err)

	report, err := seeder.Apply(ctx, f)
	require.NoError(t, err)
	// 2 categories, 2 products, 2 countries, 1 post, 3 homepage items
	assert.Equal(t, 10, report.Created)
	assert.Zero(t, report.Skipped)

	var orange domain.Product
	require.NoError(t, db.Preload("Category").Where("slug = ?", "valencia-oranges").First(&orange).Error)
	require.NotNil(t, orange.Category)
	assert.Equal(t, "citrus", orange.Category.Slug)
	assert.True(t, orange.IsFeatured)

	var country domain.ExportCountry
	require.NoError(t, db.Where("code = ?", "DE").First(&country).Error)

	var settings domain.SiteSettings
	require.NoError(t, db.First(&settings).Error)
	assert.Equal(t, 50, settings.TickerSpeed)

	var curated []domain.HomepageItem
	require.NoError(t, db.Where("section = ?", domain.HomepageSectionCategories).Order("display_order").Find(&curated).Error)
	require.Len(t, curated, 2)

	again, err := seeder.Apply(ctx, f)
	require.NoError(t, err)
	assert.Zero(t, again.Created)
	assert.Equal(t, 10, again.Skipped)
}

func TestApply_UnknownCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seeder := NewSeeder(db, zap.NewNop())

	f := &File{Products: []Product{{Name: "Figs", Category: "missing"}}}
	_, err := seeder.Apply(context.Background(), f)
	assert.ErrorContains(t, err, `unknown category "missing"`)
}

func TestApply_InvalidCountry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seeder := NewSeeder(db, zap.NewNop())

	f := &File{Countries: []Country{{Name: "Nowhere", Code: "XYZ"}}}
	_, err := seeder.Apply(context.Background(), f)
	assert.Error(t, err)
}

func TestSampleFixtureParses(t *testing.T) {
	data, err := os.ReadFile("testdata/catalog.yaml")
	require.NoError(t, err)
	f, err := Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, []string{"sa"}, f.Homepage.Countries)
}

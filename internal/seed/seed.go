// Package seed loads catalog fixtures from YAML through the same services the admin API uses.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/content"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the fixture document
type File struct {
	Settings   *Settings  `yaml:"settings"`
	Categories []Category `yaml:"categories"`
	Products   []Product  `yaml:"products"`
	Countries  []Country  `yaml:"countries"`
	Posts      []Post     `yaml:"posts"`
	Homepage   Homepage   `yaml:"homepage"`
}

type Settings struct {
	CompanyName   string `yaml:"companyName"`
	CompanyNameAr string `yaml:"companyNameAr"`
	Tagline       string `yaml:"tagline"`
	TaglineAr     string `yaml:"taglineAr"`
	About         string `yaml:"about"`
	AboutAr       string `yaml:"aboutAr"`
	Address       string `yaml:"address"`
	AddressAr     string `yaml:"addressAr"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
	WhatsApp      string `yaml:"whatsapp"`
	FacebookURL   string `yaml:"facebookUrl"`
	InstagramURL  string `yaml:"instagramUrl"`
	LinkedInURL   string `yaml:"linkedinUrl"`
	TickerSpeed   int    `yaml:"tickerSpeed"`
}

type Category struct {
	Name          string `yaml:"name"`
	NameAr        string `yaml:"nameAr"`
	Slug          string `yaml:"slug"`
	Description   string `yaml:"description"`
	DescriptionAr string `yaml:"descriptionAr"`
	ImageURL      string `yaml:"imageUrl"`
	SortOrder     int    `yaml:"sortOrder"`
	Hidden        bool   `yaml:"hidden"`
}

type Product struct {
	Category      string `yaml:"category"`
	Name          string `yaml:"name"`
	NameAr        string `yaml:"nameAr"`
	Slug          string `yaml:"slug"`
	Summary       string `yaml:"summary"`
	SummaryAr     string `yaml:"summaryAr"`
	Description   string `yaml:"description"`
	DescriptionAr string `yaml:"descriptionAr"`
	Origin        string `yaml:"origin"`
	OriginAr      string `yaml:"originAr"`
	Season        string `yaml:"season"`
	Packaging     string `yaml:"packaging"`
	ImageURL      string `yaml:"imageUrl"`
	Featured      bool   `yaml:"featured"`
	SortOrder     int    `yaml:"sortOrder"`
	Hidden        bool   `yaml:"hidden"`
}

type Country struct {
	Name      string `yaml:"name"`
	NameAr    string `yaml:"nameAr"`
	Code      string `yaml:"code"`
	Region    string `yaml:"region"`
	FlagURL   string `yaml:"flagUrl"`
	SortOrder int    `yaml:"sortOrder"`
	Hidden    bool   `yaml:"hidden"`
}

type Post struct {
	Title         string `yaml:"title"`
	TitleAr       string `yaml:"titleAr"`
	Slug          string `yaml:"slug"`
	Excerpt       string `yaml:"excerpt"`
	ExcerptAr     string `yaml:"excerptAr"`
	Content       string `yaml:"content"`
	ContentAr     string `yaml:"contentAr"`
	CoverImageURL string `yaml:"coverImageUrl"`
	Author        string `yaml:"author"`
	Status        string `yaml:"status"`
	PublishAt     string `yaml:"publishAt"`
}

// Homepage lists curated entries by slug, or by ISO code for countries
type Homepage struct {
	Categories []string `yaml:"categories"`
	Products   []string `yaml:"products"`
	Countries  []string `yaml:"countries"`
	Blog       []string `yaml:"blog"`
}

// Report counts what a run changed. Existing slugs and codes are skipped.
type Report struct {
	Created int
	Skipped int
}

// Parse decodes a fixture document, rejecting unknown keys
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// ParseFile reads and decodes the fixture at path
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Seeder applies fixture documents
type Seeder struct {
	categories   *service.CategoryService
	products     *service.ProductService
	posts        *service.BlogPostService
	countries    *service.ExportCountryService
	settings     *service.SiteSettingsService
	homepage     *service.HomepageService
	categoryRepo *repository.CategoryRepository
	productRepo  *repository.ProductRepository
	postRepo     *repository.BlogPostRepository
	countryRepo  *repository.ExportCountryRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	countryRepo := repository.NewExportCountryRepository(db)
	posts := service.NewBlogPostService(postRepo, content.NewRenderer(), logger)

	return &Seeder{
		categories:   service.NewCategoryService(categoryRepo, logger),
		products:     service.NewProductService(productRepo, categoryRepo, logger),
		posts:        posts,
		countries:    service.NewExportCountryService(countryRepo, logger),
		settings:     service.NewSiteSettingsService(repository.NewSiteSettingsRepository(db), logger),
		homepage:     service.NewHomepageService(repository.NewHomepageRepository(db), categoryRepo, productRepo, postRepo, countryRepo, posts, logger),
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		postRepo:     postRepo,
		countryRepo:  countryRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Apply creates everything in f that does not exist yet. Categories are created
// before products so products can reference them by slug.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Report, error) {
	report := &Report{}

	if f.Settings != nil {
		if err := s.applySettings(ctx, f.Settings); err != nil {
			return report, err
		}
	}

	for _, c := range f.Categories {
		req := &domain.CategoryRequest{
			Name:          c.Name,
			NameAr:        c.NameAr,
			Slug:          slugOr(c.Slug, c.Name),
			Description:   c.Description,
			DescriptionAr: c.DescriptionAr,
			ImageURL:      c.ImageURL,
			SortOrder:     c.SortOrder,
			IsActive:      !c.Hidden,
		}
		if err := s.create(report, "category", req.Slug, req, func() error {
			_, err := s.categories.Create(ctx, req)
			return err
		}); err != nil {
			return report, err
		}
	}

	for _, p := range f.Products {
		req := &domain.ProductRequest{
			Name:          p.Name,
			NameAr:        p.NameAr,
			Slug:          slugOr(p.Slug, p.Name),
			Summary:       p.Summary,
			SummaryAr:     p.SummaryAr,
			Description:   p.Description,
			DescriptionAr: p.DescriptionAr,
			Origin:        p.Origin,
			OriginAr:      p.OriginAr,
			Season:        p.Season,
			Packaging:     p.Packaging,
			ImageURL:      p.ImageURL,
			IsFeatured:    p.Featured,
			IsActive:      !p.Hidden,
			SortOrder:     p.SortOrder,
		}
		if p.Category != "" {
			category, err := s.categoryRepo.GetBySlug(ctx, p.Category)
			if err != nil {
				return report, fmt.Errorf("product %q: unknown category %q: %w", p.Name, p.Category, err)
			}
			req.CategoryID = &category.ID
		}
		if err := s.create(report, "product", req.Slug, req, func() error {
			_, err := s.products.Create(ctx, req)
			return err
		}); err != nil {
			return report, err
		}
	}

	for _, c := range f.Countries {
		req := &domain.ExportCountryRequest{
			Name:      c.Name,
			NameAr:    c.NameAr,
			Code:      c.Code,
			Region:    c.Region,
			FlagURL:   c.FlagURL,
			SortOrder: c.SortOrder,
			IsActive:  !c.Hidden,
		}
		if err := s.create(report, "country", req.Code, req, func() error {
			_, err := s.countries.Create(ctx, req)
			return err
		}); err != nil {
			return report, err
		}
	}

	for _, p := range f.Posts {
		req := &domain.BlogPostRequest{
			Title:         p.Title,
			TitleAr:       p.TitleAr,
			Slug:          slugOr(p.Slug, p.Title),
			Excerpt:       p.Excerpt,
			ExcerptAr:     p.ExcerptAr,
			Content:       p.Content,
			ContentAr:     p.ContentAr,
			CoverImageURL: p.CoverImageURL,
			Author:        p.Author,
			Status:        domain.BlogPostStatus(p.Status),
			PublishAt:     p.PublishAt,
		}
		if err := s.create(report, "post", req.Slug, req, func() error {
			_, err := s.posts.Create(ctx, req)
			return err
		}); err != nil {
			return report, err
		}
	}

	if err := s.applyHomepage(ctx, f.Homepage, report); err != nil {
		return report, err
	}

	return report, nil
}

// create validates req and runs fn, counting conflicts as skipped
func (s *Seeder) create(report *Report, kind, key string, req interface{}, fn func() error) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%s %q: %w", kind, key, err)
	}
	err := fn()
	switch {
	case err == nil:
		report.Created++
		return nil
	case errors.Is(err, service.ErrConflict):
		s.logger.Debug("seed entry exists", zap.String("kind", kind), zap.String("key", key))
		report.Skipped++
		return nil
	default:
		return fmt.Errorf("%s %q: %w", kind, key, err)
	}
}

func (s *Seeder) applySettings(ctx context.Context, st *Settings) error {
	req := &domain.UpdateSiteSettingsRequest{
		CompanyName:   st.CompanyName,
		CompanyNameAr: st.CompanyNameAr,
		Tagline:       st.Tagline,
		TaglineAr:     st.TaglineAr,
		About:         st.About,
		AboutAr:       st.AboutAr,
		Address:       st.Address,
		AddressAr:     st.AddressAr,
		Email:         st.Email,
		Phone:         st.Phone,
		WhatsApp:      st.WhatsApp,
		FacebookURL:   st.FacebookURL,
		InstagramURL:  st.InstagramURL,
		LinkedInURL:   st.LinkedInURL,
		TickerSpeed:   st.TickerSpeed,
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if _, err := s.settings.Update(ctx, req); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

func (s *Seeder) applyHomepage(ctx context.Context, h Homepage, report *Report) error {
	sections := []struct {
		section domain.HomepageSection
		keys    []string
		lookup  func(string) (uuid.UUID, error)
	}{
		{domain.HomepageSectionCategories, h.Categories, func(slug string) (uuid.UUID, error) {
			c, err := s.categoryRepo.GetBySlug(ctx, slug)
			if err != nil {
				return uuid.Nil, err
			}
			return c.ID, nil
		}},
		{domain.HomepageSectionProducts, h.Products, func(slug string) (uuid.UUID, error) {
			p, err := s.productRepo.GetBySlug(ctx, slug)
			if err != nil {
				return uuid.Nil, err
			}
			return p.ID, nil
		}},
		{domain.HomepageSectionCountries, h.Countries, func(code string) (uuid.UUID, error) {
			c, err := s.countryRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
			if err != nil {
				return uuid.Nil, err
			}
			return c.ID, nil
		}},
		{domain.HomepageSectionBlog, h.Blog, func(slug string) (uuid.UUID, error) {
			p, err := s.postRepo.GetBySlug(ctx, slug)
			if err != nil {
				return uuid.Nil, err
			}
			return p.ID, nil
		}},
	}

	for _, sec := range sections {
		for _, key := range sec.keys {
			id, err := sec.lookup(key)
			if err != nil {
				return fmt.Errorf("homepage %s: unknown entry %q: %w", sec.section, key, err)
			}
			req := &domain.AddHomepageItemRequest{Section: sec.section, EntityID: id}
			if err := s.create(report, "homepage "+string(sec.section), key, req, func() error {
				_, err := s.homepage.Add(ctx, req)
				return err
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func slugOr(slug, name string) string {
	if slug != "" {
		return slug
	}
	return service.Slugify(name)
}

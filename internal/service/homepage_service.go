package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	fallbackProductLimit = 8
	fallbackPostLimit    = 3
)

// HomepageService curates and resolves the landing page sections
type HomepageService struct {
	homepageRepo *repository.HomepageRepository
	categoryRepo *repository.CategoryRepository
	productRepo  *repository.ProductRepository
	postRepo     *repository.BlogPostRepository
	countryRepo  *repository.ExportCountryRepository
	posts        *BlogPostService
	logger       *zap.Logger
	now          func() time.Time
}

// NewHomepageService creates a new homepage service instance
func NewHomepageService(
	homepageRepo *repository.HomepageRepository,
	categoryRepo *repository.CategoryRepository,
	productRepo *repository.ProductRepository,
	postRepo *repository.BlogPostRepository,
	countryRepo *repository.ExportCountryRepository,
	posts *BlogPostService,
	logger *zap.Logger,
) *HomepageService {
	return &HomepageService{
		homepageRepo: homepageRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		postRepo:     postRepo,
		countryRepo:  countryRepo,
		posts:        posts,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ListSection returns the curation rows of a section with entity labels for the admin panel
func (s *HomepageService) ListSection(ctx context.Context, section domain.HomepageSection) ([]domain.HomepageItemDTO, error) {
	if !section.IsValid() {
		return nil, ErrInvalidSection
	}

	items, err := s.homepageRepo.ListBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to list homepage items: %w", err)
	}

	labels, err := s.labels(ctx, section, entityIDs(items))
	if err != nil {
		return nil, err
	}

	dtos := make([]domain.HomepageItemDTO, len(items))
	for i, item := range items {
		label, ok := labels[item.EntityID]
		dtos[i] = domain.HomepageItemDTO{
			ID:           item.ID,
			Section:      item.Section,
			EntityID:     item.EntityID,
			DisplayOrder: item.DisplayOrder,
			Label:        label,
			Missing:      !ok,
		}
	}
	return dtos, nil
}

// Add appends an entity to the end of a section
func (s *HomepageService) Add(ctx context.Context, req *domain.AddHomepageItemRequest) (*domain.HomepageItemDTO, error) {
	if !req.Section.IsValid() {
		return nil, ErrInvalidSection
	}

	labels, err := s.labels(ctx, req.Section, []uuid.UUID{req.EntityID})
	if err != nil {
		return nil, err
	}
	label, ok := labels[req.EntityID]
	if !ok {
		return nil, ErrEntityNotFound
	}

	item := &domain.HomepageItem{Section: req.Section, EntityID: req.EntityID}
	if err := s.homepageRepo.Add(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCurated
		}
		return nil, fmt.Errorf("failed to add homepage item: %w", err)
	}

	s.logger.Info("homepage item added",
		zap.String("section", string(item.Section)),
		zap.String("entity_id", item.EntityID.String()),
		zap.Int("display_order", item.DisplayOrder))

	return &domain.HomepageItemDTO{
		ID:           item.ID,
		Section:      item.Section,
		EntityID:     item.EntityID,
		DisplayOrder: item.DisplayOrder,
		Label:        label,
	}, nil
}

// Remove deletes a curation row
func (s *HomepageService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.homepageRepo.Remove(ctx, id); err != nil {
		return translateRepoError(err, "remove homepage item")
	}
	return nil
}

// Reorder sets the display order of a section to the order of ids.
// ids must name every row of the section exactly once.
func (s *HomepageService) Reorder(ctx context.Context, req *domain.ReorderHomepageRequest) ([]domain.HomepageItemDTO, error) {
	if !req.Section.IsValid() {
		return nil, ErrInvalidSection
	}

	items, err := s.homepageRepo.ListBySection(ctx, req.Section)
	if err != nil {
		return nil, fmt.Errorf("failed to list homepage items: %w", err)
	}
	if len(items) != len(req.IDs) {
		return nil, ErrReorderMismatch
	}
	current := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		current[item.ID] = true
	}
	for _, id := range req.IDs {
		if !current[id] {
			return nil, ErrReorderMismatch
		}
		delete(current, id)
	}

	if err := s.homepageRepo.Reorder(ctx, req.Section, req.IDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReorderMismatch
		}
		return nil, fmt.Errorf("failed to reorder homepage items: %w", err)
	}

	return s.ListSection(ctx, req.Section)
}

// Resolve builds the landing page in lang. Curated entries keep their order; entries
// whose entity is gone, inactive or unpublished are skipped. A section with no
// curated entries falls back to active content.
func (s *HomepageService) Resolve(ctx context.Context, lang domain.Language) (*domain.HomepageDTO, error) {
	dto := &domain.HomepageDTO{
		Language:   lang,
		Direction:  "ltr",
		Categories: []domain.PublicCategoryDTO{},
		Products:   []domain.PublicProductDTO{},
		Countries:  []domain.PublicCountryDTO{},
		Posts:      []domain.PublicBlogPostDTO{},
	}
	if lang.IsRTL() {
		dto.Direction = "rtl"
	}

	var err error
	if dto.Categories, err = s.resolveCategories(ctx, lang); err != nil {
		return nil, err
	}
	if dto.Products, err = s.resolveProducts(ctx, lang); err != nil {
		return nil, err
	}
	if dto.Countries, err = s.resolveCountries(ctx, lang); err != nil {
		return nil, err
	}
	if dto.Posts, err = s.resolvePosts(ctx, lang); err != nil {
		return nil, err
	}
	return dto, nil
}

func (s *HomepageService) curated(ctx context.Context, section domain.HomepageSection) ([]uuid.UUID, error) {
	items, err := s.homepageRepo.ListBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s homepage items: %w", section, err)
	}
	return entityIDs(items), nil
}

func (s *HomepageService) resolveCategories(ctx context.Context, lang domain.Language) ([]domain.PublicCategoryDTO, error) {
	ids, err := s.curated(ctx, domain.HomepageSectionCategories)
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if len(ids) == 0 {
		categories, err = s.categoryRepo.ListActive(ctx)
	} else {
		categories, err = s.categoryRepo.GetByIDs(ctx, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load homepage categories: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	if len(ids) == 0 {
		ids = make([]uuid.UUID, len(categories))
		for i := range categories {
			ids[i] = categories[i].ID
		}
	}

	result := make([]domain.PublicCategoryDTO, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok || !c.IsActive {
			continue
		}
		result = append(result, mapper.ToPublicCategoryDTO(c, lang))
	}
	return result, nil
}

func (s *HomepageService) resolveProducts(ctx context.Context, lang domain.Language) ([]domain.PublicProductDTO, error) {
	ids, err := s.curated(ctx, domain.HomepageSectionProducts)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if len(ids) == 0 {
		active, featured := true, true
		products, _, err = s.productRepo.List(ctx, 1, fallbackProductLimit,
			&domain.ProductFilters{Active: &active, Featured: &featured},
			repository.SortConfig{Field: "sortOrder", Order: repository.SortOrderAsc})
	} else {
		products, err = s.productRepo.GetByIDs(ctx, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load homepage products: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	if len(ids) == 0 {
		ids = make([]uuid.UUID, len(products))
		for i := range products {
			ids[i] = products[i].ID
		}
	}

	result := make([]domain.PublicProductDTO, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.IsActive {
			continue
		}
		hideInactiveCategory(p)
		result = append(result, mapper.ToPublicProductDTO(p, lang))
	}
	return result, nil
}

func (s *HomepageService) resolveCountries(ctx context.Context, lang domain.Language) ([]domain.PublicCountryDTO, error) {
	ids, err := s.curated(ctx, domain.HomepageSectionCountries)
	if err != nil {
		return nil, err
	}

	var countries []domain.ExportCountry
	if len(ids) == 0 {
		countries, err = s.countryRepo.ListActive(ctx)
	} else {
		countries, err = s.countryRepo.GetByIDs(ctx, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load homepage countries: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.ExportCountry, len(countries))
	for i := range countries {
		byID[countries[i].ID] = &countries[i]
	}
	if len(ids) == 0 {
		ids = make([]uuid.UUID, len(countries))
		for i := range countries {
			ids[i] = countries[i].ID
		}
	}

	result := make([]domain.PublicCountryDTO, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok || !c.IsActive {
			continue
		}
		result = append(result, mapper.ToPublicCountryDTO(c, lang))
	}
	return result, nil
}

func (s *HomepageService) resolvePosts(ctx context.Context, lang domain.Language) ([]domain.PublicBlogPostDTO, error) {
	ids, err := s.curated(ctx, domain.HomepageSectionBlog)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if len(ids) == 0 {
		posts, _, err := s.postRepo.ListPublished(ctx, now, 1, fallbackPostLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load homepage posts: %w", err)
		}
		return s.posts.toPublicList(posts, lang), nil
	}

	posts, err := s.postRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load homepage posts: %w", err)
	}
	byID := make(map[uuid.UUID]domain.BlogPost, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	visible := make([]domain.BlogPost, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.IsPublic(now) {
			continue
		}
		visible = append(visible, p)
	}
	return s.posts.toPublicList(visible, lang), nil
}

// labels returns the English name of each existing entity in section
func (s *HomepageService) labels(ctx context.Context, section domain.HomepageSection, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	labels := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return labels, nil
	}

	switch section {
	case domain.HomepageSectionCategories:
		rows, err := s.categoryRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		for _, r := range rows {
			labels[r.ID] = r.Name
		}
	case domain.HomepageSectionProducts:
		rows, err := s.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}
		for _, r := range rows {
			labels[r.ID] = r.Name
		}
	case domain.HomepageSectionCountries:
		rows, err := s.countryRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load countries: %w", err)
		}
		for _, r := range rows {
			labels[r.ID] = r.Name
		}
	case domain.HomepageSectionBlog:
		rows, err := s.postRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load blog posts: %w", err)
		}
		for _, r := range rows {
			labels[r.ID] = r.Title
		}
	default:
		return nil, ErrInvalidSection
	}
	return labels, nil
}

func entityIDs(items []domain.HomepageItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.EntityID
	}
	return ids
}

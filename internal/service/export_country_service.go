package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

// ExportCountryService handles business logic for destination markets
type ExportCountryService struct {
	countryRepo *repository.ExportCountryRepository
	logger      *zap.Logger
}

// NewExportCountryService creates a new export country service instance
func NewExportCountryService(countryRepo *repository.ExportCountryRepository, logger *zap.Logger) *ExportCountryService {
	return &ExportCountryService{
		countryRepo: countryRepo,
		logger:      logger,
	}
}

// NormalizeCountryCode upper-cases an ISO 3166-1 alpha-2 code and checks its shape
func NormalizeCountryCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", ErrInvalidCountryCode
	}
	return code, nil
}

// Create creates a new export country
func (s *ExportCountryService) Create(ctx context.Context, req *domain.ExportCountryRequest) (*domain.ExportCountryDTO, error) {
	code, err := s.checkCode(ctx, req.Code, nil)
	if err != nil {
		return nil, err
	}

	country := &domain.ExportCountry{Code: code}
	applyCountryRequest(country, req)

	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, translateRepoError(err, "create export country")
	}

	s.logger.Info("export country created", zap.String("id", country.ID.String()), zap.String("code", country.Code))

	dto := mapper.ToExportCountryDTO(country)
	return &dto, nil
}

// GetByID retrieves a country by ID
func (s *ExportCountryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportCountryDTO, error) {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get export country")
	}
	dto := mapper.ToExportCountryDTO(country)
	return &dto, nil
}

// Update replaces the editable fields of a country
func (s *ExportCountryService) Update(ctx context.Context, id uuid.UUID, req *domain.ExportCountryRequest) (*domain.ExportCountryDTO, error) {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "get export country")
	}

	code, err := s.checkCode(ctx, req.Code, &id)
	if err != nil {
		return nil, err
	}
	country.Code = code
	applyCountryRequest(country, req)

	if err := s.countryRepo.Update(ctx, country); err != nil {
		return nil, translateRepoError(err, "update export country")
	}

	dto := mapper.ToExportCountryDTO(country)
	return &dto, nil
}

// Delete removes a country and its homepage placement
func (s *ExportCountryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.countryRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "delete export country")
	}
	s.logger.Info("export country deleted", zap.String("id", id.String()))
	return nil
}

// List returns a page of countries for the admin panel
func (s *ExportCountryService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	countries, total, err := s.countryRepo.List(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list export countries: %w", err)
	}

	dtos := make([]domain.ExportCountryDTO, len(countries))
	for i := range countries {
		dtos[i] = mapper.ToExportCountryDTO(&countries[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// ListPublic returns the active countries resolved to lang
func (s *ExportCountryService) ListPublic(ctx context.Context, lang domain.Language) ([]domain.PublicCountryDTO, error) {
	countries, err := s.countryRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list export countries: %w", err)
	}

	dtos := make([]domain.PublicCountryDTO, len(countries))
	for i := range countries {
		dtos[i] = mapper.ToPublicCountryDTO(&countries[i], lang)
	}
	return dtos, nil
}

func (s *ExportCountryService) checkCode(ctx context.Context, raw string, excludeID *uuid.UUID) (string, error) {
	code, err := NormalizeCountryCode(raw)
	if err != nil {
		return "", err
	}
	taken, err := s.countryRepo.CodeExists(ctx, code, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check country code: %w", err)
	}
	if taken {
		return "", ErrDuplicateCode
	}
	return code, nil
}

func applyCountryRequest(country *domain.ExportCountry, req *domain.ExportCountryRequest) {
	country.Name = strings.TrimSpace(req.Name)
	country.NameAr = strings.TrimSpace(req.NameAr)
	country.Region = req.Region
	country.FlagURL = req.FlagURL
	country.SortOrder = req.SortOrder
	country.IsActive = req.IsActive
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

// SiteSettingsService manages the company information shown across the site
type SiteSettingsService struct {
	settingsRepo *repository.SiteSettingsRepository
	logger       *zap.Logger
}

// NewSiteSettingsService creates a new site settings service instance
func NewSiteSettingsService(settingsRepo *repository.SiteSettingsRepository, logger *zap.Logger) *SiteSettingsService {
	return &SiteSettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the settings for the admin panel
func (s *SiteSettingsService) Get(ctx context.Context) (*domain.SiteSettingsDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	dto := mapper.ToSiteSettingsDTO(settings)
	return &dto, nil
}

// GetPublic returns the settings resolved to lang
func (s *SiteSettingsService) GetPublic(ctx context.Context, lang domain.Language) (*domain.PublicSettingsDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	dto := mapper.ToPublicSettingsDTO(settings, lang)
	return &dto, nil
}

// Update replaces the settings. A zero ticker speed resets it to the default.
func (s *SiteSettingsService) Update(ctx context.Context, req *domain.UpdateSiteSettingsRequest) (*domain.SiteSettingsDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	settings.CompanyName = strings.TrimSpace(req.CompanyName)
	settings.CompanyNameAr = strings.TrimSpace(req.CompanyNameAr)
	settings.Tagline = req.Tagline
	settings.TaglineAr = req.TaglineAr
	settings.About = req.About
	settings.AboutAr = req.AboutAr
	settings.Address = req.Address
	settings.AddressAr = req.AddressAr
	settings.Email = strings.TrimSpace(req.Email)
	settings.Phone = strings.TrimSpace(req.Phone)
	settings.WhatsApp = strings.TrimSpace(req.WhatsApp)
	settings.FacebookURL = req.FacebookURL
	settings.InstagramURL = req.InstagramURL
	settings.LinkedInURL = req.LinkedInURL
	settings.TickerSpeed = req.TickerSpeed
	if settings.TickerSpeed == 0 {
		settings.TickerSpeed = domain.DefaultSiteSettings().TickerSpeed
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save site settings: %w", err)
	}

	s.logger.Info("site settings updated")

	dto := mapper.ToSiteSettingsDTO(settings)
	return &dto, nil
}

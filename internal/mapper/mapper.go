package mapper

import (
	"time"

	"github.com/harvest-export/website/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// ToCategoryDTO converts Category to CategoryDTO
func ToCategoryDTO(c *domain.Category) domain.CategoryDTO {
	return domain.CategoryDTO{
		ID:            c.ID,
		Name:          c.Name,
		NameAr:        c.NameAr,
		Slug:          c.Slug,
		Description:   c.Description,
		DescriptionAr: c.DescriptionAr,
		ImageURL:      c.ImageURL,
		SortOrder:     c.SortOrder,
		IsActive:      c.IsActive,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
}

// ToProductDTO converts Product to ProductDTO
func ToProductDTO(p *domain.Product) domain.ProductDTO {
	dto := domain.ProductDTO{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Slug:          p.Slug,
		Summary:       p.Summary,
		SummaryAr:     p.SummaryAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Origin:        p.Origin,
		OriginAr:      p.OriginAr,
		Season:        p.Season,
		Packaging:     p.Packaging,
		ImageURL:      p.ImageURL,
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
	if p.Category != nil {
		dto.CategoryName = p.Category.Name
	}
	return dto
}

// ToBlogPostDTO converts BlogPost to BlogPostDTO
func ToBlogPostDTO(p *domain.BlogPost) domain.BlogPostDTO {
	return domain.BlogPostDTO{
		ID:            p.ID,
		Title:         p.Title,
		TitleAr:       p.TitleAr,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		ExcerptAr:     p.ExcerptAr,
		Content:       p.Content,
		ContentAr:     p.ContentAr,
		CoverImageURL: p.CoverImageURL,
		Author:        p.Author,
		Status:        p.Status,
		PublishAt:     formatTimePtr(p.PublishAt),
		PublishedAt:   formatTimePtr(p.PublishedAt),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

// ToExportCountryDTO converts ExportCountry to ExportCountryDTO
func ToExportCountryDTO(c *domain.ExportCountry) domain.ExportCountryDTO {
	return domain.ExportCountryDTO{
		ID:        c.ID,
		Name:      c.Name,
		NameAr:    c.NameAr,
		Code:      c.Code,
		Region:    c.Region,
		FlagURL:   c.FlagURL,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

// ToContactMessageDTO converts ContactMessage to ContactMessageDTO
func ToContactMessageDTO(m *domain.ContactMessage) domain.ContactMessageDTO {
	return domain.ContactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Company:   m.Company,
		Country:   m.Country,
		Subject:   m.Subject,
		Message:   m.Message,
		Language:  m.Language,
		IsRead:    m.IsRead,
		ReadAt:    formatTimePtr(m.ReadAt),
		IPAddress: m.IPAddress,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

// ToSiteSettingsDTO converts SiteSettings to SiteSettingsDTO
func ToSiteSettingsDTO(s *domain.SiteSettings) domain.SiteSettingsDTO {
	return domain.SiteSettingsDTO{
		CompanyName:   s.CompanyName,
		CompanyNameAr: s.CompanyNameAr,
		Tagline:       s.Tagline,
		TaglineAr:     s.TaglineAr,
		About:         s.About,
		AboutAr:       s.AboutAr,
		Address:       s.Address,
		AddressAr:     s.AddressAr,
		Email:         s.Email,
		Phone:         s.Phone,
		WhatsApp:      s.WhatsApp,
		FacebookURL:   s.FacebookURL,
		InstagramURL:  s.InstagramURL,
		LinkedInURL:   s.LinkedInURL,
		TickerSpeed:   s.TickerSpeed,
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

// ToAdminUserDTO converts AdminUser to AdminUserDTO. The password hash is never exposed.
func ToAdminUserDTO(u *domain.AdminUser) domain.AdminUserDTO {
	return domain.AdminUserDTO{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.IsActive,
		LastLoginAt: formatTimePtr(u.LastLoginAt),
	}
}

// ToAuditLogDTO converts AuditLog to AuditLogDTO
func ToAuditLogDTO(a *domain.AuditLog) domain.AuditLogDTO {
	return domain.AuditLogDTO{
		ID:          a.ID,
		UserID:      a.UserID,
		UserEmail:   a.UserEmail,
		Action:      a.Action,
		EntityType:  a.EntityType,
		EntityID:    a.EntityID,
		NewValues:   a.NewValues,
		IPAddress:   a.IPAddress,
		RequestID:   a.RequestID,
		PerformedAt: formatTime(a.PerformedAt),
	}
}

// ToMediaDTO converts Media to MediaDTO
func ToMediaDTO(m *domain.Media) domain.MediaDTO {
	return domain.MediaDTO{
		ID:          m.ID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Size:        m.Size,
		URL:         m.URL,
		CreatedAt:   formatTime(m.CreatedAt),
	}
}

// ToPublicCategoryDTO resolves a category to one language
func ToPublicCategoryDTO(c *domain.Category, lang domain.Language) domain.PublicCategoryDTO {
	return domain.PublicCategoryDTO{
		ID:          c.ID,
		Name:        domain.Localize(lang, c.Name, c.NameAr),
		Slug:        c.Slug,
		Description: domain.Localize(lang, c.Description, c.DescriptionAr),
		ImageURL:    c.ImageURL,
	}
}

// ToPublicProductDTO resolves a product to one language
func ToPublicProductDTO(p *domain.Product, lang domain.Language) domain.PublicProductDTO {
	dto := domain.PublicProductDTO{
		ID:          p.ID,
		Name:        domain.Localize(lang, p.Name, p.NameAr),
		Slug:        p.Slug,
		Summary:     domain.Localize(lang, p.Summary, p.SummaryAr),
		Description: domain.Localize(lang, p.Description, p.DescriptionAr),
		Origin:      domain.Localize(lang, p.Origin, p.OriginAr),
		Season:      p.Season,
		Packaging:   p.Packaging,
		ImageURL:    p.ImageURL,
		IsFeatured:  p.IsFeatured,
	}
	if p.Category != nil {
		cat := ToPublicCategoryDTO(p.Category, lang)
		cat.Description = ""
		dto.Category = &cat
	}
	return dto
}

// ToPublicBlogPostDTO resolves a post to one language. contentHTML is the rendered body, empty for listings.
func ToPublicBlogPostDTO(p *domain.BlogPost, lang domain.Language, contentHTML string) domain.PublicBlogPostDTO {
	return domain.PublicBlogPostDTO{
		ID:            p.ID,
		Title:         domain.Localize(lang, p.Title, p.TitleAr),
		Slug:          p.Slug,
		Excerpt:       domain.Localize(lang, p.Excerpt, p.ExcerptAr),
		ContentHTML:   contentHTML,
		CoverImageURL: p.CoverImageURL,
		Author:        p.Author,
		PublishedAt:   formatTimePtr(p.PublishedAt),
	}
}

// ToPublicCountryDTO resolves a country to one language
func ToPublicCountryDTO(c *domain.ExportCountry, lang domain.Language) domain.PublicCountryDTO {
	return domain.PublicCountryDTO{
		Name:    domain.Localize(lang, c.Name, c.NameAr),
		Code:    c.Code,
		Region:  c.Region,
		FlagURL: c.FlagURL,
	}
}

// ToPublicSettingsDTO resolves site settings to one language
func ToPublicSettingsDTO(s *domain.SiteSettings, lang domain.Language) domain.PublicSettingsDTO {
	return domain.PublicSettingsDTO{
		CompanyName:  domain.Localize(lang, s.CompanyName, s.CompanyNameAr),
		Tagline:      domain.Localize(lang, s.Tagline, s.TaglineAr),
		About:        domain.Localize(lang, s.About, s.AboutAr),
		Address:      domain.Localize(lang, s.Address, s.AddressAr),
		Email:        s.Email,
		Phone:        s.Phone,
		WhatsApp:     s.WhatsApp,
		FacebookURL:  s.FacebookURL,
		InstagramURL: s.InstagramURL,
		LinkedInURL:  s.LinkedInURL,
		TickerSpeed:  s.TickerSpeed,
	}
}

package domain

import (
	"github.com/google/uuid"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// PaginatedResponse wraps a page of results
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// NewPaginatedResponse computes TotalPages from total and pageSize
func NewPaginatedResponse(data interface{}, total int64, page, pageSize int) PaginatedResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Admin DTOs carry both language variants

type CategoryDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameAr        string    `json:"nameAr"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	DescriptionAr string    `json:"descriptionAr"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	SortOrder     int       `json:"sortOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     string    `json:"createdAt"` // ISO 8601
	UpdatedAt     string    `json:"updatedAt"` // ISO 8601
}

type ProductDTO struct {
	ID            uuid.UUID  `json:"id"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName  string     `json:"categoryName,omitempty"`
	Name          string     `json:"name"`
	NameAr        string     `json:"nameAr"`
	Slug          string     `json:"slug"`
	Summary       string     `json:"summary"`
	SummaryAr     string     `json:"summaryAr"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"descriptionAr"`
	Origin        string     `json:"origin"`
	OriginAr      string     `json:"originAr"`
	Season        string     `json:"season,omitempty"`
	Packaging     string     `json:"packaging,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	IsFeatured    bool       `json:"isFeatured"`
	IsActive      bool       `json:"isActive"`
	SortOrder     int        `json:"sortOrder"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

type BlogPostDTO struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	TitleAr       string         `json:"titleAr"`
	Slug          string         `json:"slug"`
	Excerpt       string         `json:"excerpt"`
	ExcerptAr     string         `json:"excerptAr"`
	Content       string         `json:"content"`
	ContentAr     string         `json:"contentAr"`
	CoverImageURL string         `json:"coverImageUrl,omitempty"`
	Author        string         `json:"author,omitempty"`
	Status        BlogPostStatus `json:"status"`
	PublishAt     string         `json:"publishAt,omitempty"`
	PublishedAt   string         `json:"publishedAt,omitempty"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

type ExportCountryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"nameAr"`
	Code      string    `json:"code"`
	Region    string    `json:"region,omitempty"`
	FlagURL   string    `json:"flagUrl,omitempty"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// HomepageItemDTO is a curation row with the label of the entity it points to.
// Missing is set when the entity no longer exists.
type HomepageItemDTO struct {
	ID           uuid.UUID       `json:"id"`
	Section      HomepageSection `json:"section"`
	EntityID     uuid.UUID       `json:"entityId"`
	DisplayOrder int             `json:"displayOrder"`
	Label        string          `json:"label,omitempty"`
	Missing      bool            `json:"missing,omitempty"`
}

type ContactMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Country   string    `json:"country,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Language  string    `json:"language"`
	IsRead    bool      `json:"isRead"`
	ReadAt    string    `json:"readAt,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
	CreatedAt string    `json:"createdAt"`
}

type SiteSettingsDTO struct {
	CompanyName   string `json:"companyName"`
	CompanyNameAr string `json:"companyNameAr"`
	Tagline       string `json:"tagline"`
	TaglineAr     string `json:"taglineAr"`
	About         string `json:"about"`
	AboutAr       string `json:"aboutAr"`
	Address       string `json:"address"`
	AddressAr     string `json:"addressAr"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	WhatsApp      string `json:"whatsapp"`
	FacebookURL   string `json:"facebookUrl"`
	InstagramURL  string `json:"instagramUrl"`
	LinkedInURL   string `json:"linkedinUrl"`
	TickerSpeed   int    `json:"tickerSpeed"`
	UpdatedAt     string `json:"updatedAt"`
}

type AdminUserDTO struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"isActive"`
	LastLoginAt string    `json:"lastLoginAt,omitempty"`
}

type AuditLogDTO struct {
	ID          uuid.UUID   `json:"id"`
	UserID      string      `json:"userId"`
	UserEmail   string      `json:"userEmail,omitempty"`
	Action      AuditAction `json:"action"`
	EntityType  string      `json:"entityType"`
	EntityID    *uuid.UUID  `json:"entityId,omitempty"`
	NewValues   string      `json:"newValues,omitempty"`
	IPAddress   string      `json:"ipAddress,omitempty"`
	RequestID   string      `json:"requestId,omitempty"`
	PerformedAt string      `json:"performedAt"`
}

type MediaDTO struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	CreatedAt   string    `json:"createdAt"`
}

// DashboardDTO summarizes site content for the admin landing screen
type DashboardDTO struct {
	Products       int64               `json:"products"`
	ActiveProducts int64               `json:"activeProducts"`
	Categories     int64               `json:"categories"`
	PublishedPosts int64               `json:"publishedPosts"`
	ScheduledPosts int64               `json:"scheduledPosts"`
	DraftPosts     int64               `json:"draftPosts"`
	Countries      int64               `json:"countries"`
	Messages       int64               `json:"messages"`
	UnreadMessages int64               `json:"unreadMessages"`
	RecentMessages []ContactMessageDTO `json:"recentMessages"`
	RecentActivity []AuditLogDTO       `json:"recentActivity"`
}

// Public DTOs are resolved to a single language

type PublicCategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

type PublicProductDTO struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Summary     string             `json:"summary,omitempty"`
	Description string             `json:"description,omitempty"`
	Origin      string             `json:"origin,omitempty"`
	Season      string             `json:"season,omitempty"`
	Packaging   string             `json:"packaging,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	IsFeatured  bool               `json:"isFeatured"`
	Category    *PublicCategoryDTO `json:"category,omitempty"`
}

type PublicBlogPostDTO struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt,omitempty"`
	ContentHTML   string    `json:"contentHtml,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Author        string    `json:"author,omitempty"`
	PublishedAt   string    `json:"publishedAt"`
}

type PublicCountryDTO struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Region  string `json:"region,omitempty"`
	FlagURL string `json:"flagUrl,omitempty"`
}

type PublicSettingsDTO struct {
	CompanyName  string `json:"companyName"`
	Tagline      string `json:"tagline,omitempty"`
	About        string `json:"about,omitempty"`
	Address      string `json:"address,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	FacebookURL  string `json:"facebookUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	LinkedInURL  string `json:"linkedinUrl,omitempty"`
	TickerSpeed  int    `json:"tickerSpeed"`
}

// HomepageDTO is the curated landing page content in one language
type HomepageDTO struct {
	Language   Language            `json:"language"`
	Direction  string              `json:"direction"`
	Categories []PublicCategoryDTO `json:"categories"`
	Products   []PublicProductDTO  `json:"products"`
	Countries  []PublicCountryDTO  `json:"countries"`
	Posts      []PublicBlogPostDTO `json:"posts"`
}

// Requests

type CategoryRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	NameAr        string `json:"nameAr,omitempty" validate:"max=200"`
	Slug          string `json:"slug,omitempty" validate:"max=200"`
	Description   string `json:"description,omitempty" validate:"max=5000"`
	DescriptionAr string `json:"descriptionAr,omitempty" validate:"max=5000"`
	ImageURL      string `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	SortOrder     int    `json:"sortOrder" validate:"gte=0"`
	IsActive      bool   `json:"isActive"`
}

type ProductRequest struct {
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	Name          string     `json:"name" validate:"required,max=200"`
	NameAr        string     `json:"nameAr,omitempty" validate:"max=200"`
	Slug          string     `json:"slug,omitempty" validate:"max=200"`
	Summary       string     `json:"summary,omitempty" validate:"max=500"`
	SummaryAr     string     `json:"summaryAr,omitempty" validate:"max=500"`
	Description   string     `json:"description,omitempty" validate:"max=10000"`
	DescriptionAr string     `json:"descriptionAr,omitempty" validate:"max=10000"`
	Origin        string     `json:"origin,omitempty" validate:"max=200"`
	OriginAr      string     `json:"originAr,omitempty" validate:"max=200"`
	Season        string     `json:"season,omitempty" validate:"max=100"`
	Packaging     string     `json:"packaging,omitempty" validate:"max=200"`
	ImageURL      string     `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	IsFeatured    bool       `json:"isFeatured"`
	IsActive      bool       `json:"isActive"`
	SortOrder     int        `json:"sortOrder" validate:"gte=0"`
}

type BlogPostRequest struct {
	Title         string         `json:"title" validate:"required,max=300"`
	TitleAr       string         `json:"titleAr,omitempty" validate:"max=300"`
	Slug          string         `json:"slug,omitempty" validate:"max=300"`
	Excerpt       string         `json:"excerpt,omitempty" validate:"max=1000"`
	ExcerptAr     string         `json:"excerptAr,omitempty" validate:"max=1000"`
	Content       string         `json:"content,omitempty"`
	ContentAr     string         `json:"contentAr,omitempty"`
	CoverImageURL string         `json:"coverImageUrl,omitempty" validate:"omitempty,max=500"`
	Author        string         `json:"author,omitempty" validate:"max=200"`
	Status        BlogPostStatus `json:"status,omitempty" validate:"omitempty,oneof=draft scheduled published"`
	// PublishAt is RFC 3339; required when status is scheduled
	PublishAt string `json:"publishAt,omitempty"`
}

type ExportCountryRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	NameAr    string `json:"nameAr,omitempty" validate:"max=200"`
	Code      string `json:"code" validate:"required,len=2,alpha"`
	Region    string `json:"region,omitempty" validate:"max=100"`
	FlagURL   string `json:"flagUrl,omitempty" validate:"omitempty,max=500"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
	IsActive  bool   `json:"isActive"`
}

type AddHomepageItemRequest struct {
	Section  HomepageSection `json:"section" validate:"required,oneof=products categories blog countries"`
	EntityID uuid.UUID       `json:"entityId" validate:"required"`
}

type ReorderHomepageRequest struct {
	Section HomepageSection `json:"section" validate:"required,oneof=products categories blog countries"`
	IDs     []uuid.UUID     `json:"ids" validate:"required,min=1,dive,required"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Company string `json:"company,omitempty" validate:"max=200"`
	Country string `json:"country,omitempty" validate:"max=100"`
	Subject string `json:"subject,omitempty" validate:"max=300"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type MarkMessageReadRequest struct {
	IsRead *bool `json:"isRead,omitempty"`
}

type UpdateSiteSettingsRequest struct {
	CompanyName   string `json:"companyName" validate:"required,max=200"`
	CompanyNameAr string `json:"companyNameAr,omitempty" validate:"max=200"`
	Tagline       string `json:"tagline,omitempty" validate:"max=300"`
	TaglineAr     string `json:"taglineAr,omitempty" validate:"max=300"`
	About         string `json:"about,omitempty" validate:"max=10000"`
	AboutAr       string `json:"aboutAr,omitempty" validate:"max=10000"`
	Address       string `json:"address,omitempty" validate:"max=500"`
	AddressAr     string `json:"addressAr,omitempty" validate:"max=500"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone,omitempty" validate:"max=50"`
	WhatsApp      string `json:"whatsapp,omitempty" validate:"max=50"`
	FacebookURL   string `json:"facebookUrl,omitempty" validate:"omitempty,url,max=500"`
	InstagramURL  string `json:"instagramUrl,omitempty" validate:"omitempty,url,max=500"`
	LinkedInURL   string `json:"linkedinUrl,omitempty" validate:"omitempty,url,max=500"`
	TickerSpeed   int    `json:"tickerSpeed" validate:"gte=0,lte=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=200"`
}

// ChangePasswordRequest replaces the signed-in admin's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=200"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=200,nefield=CurrentPassword"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      AdminUserDTO `json:"user"`
}

// Filters

type ProductFilters struct {
	CategoryID   *uuid.UUID
	CategorySlug string
	Featured     *bool
	Active       *bool
	Search       string
}

type BlogPostFilters struct {
	Status BlogPostStatus
	Search string
}

type ContactMessageFilters struct {
	IsRead *bool
	Search string
}

type AuditLogFilters struct {
	EntityType string
	EntityID   *uuid.UUID
	UserID     string
	Action     AuditAction
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the columns shared by every content table
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an ID so inserts work the same on PostgreSQL and SQLite
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Category groups products in the catalog
type Category struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null"`
	NameAr        string `gorm:"type:varchar(200);column:name_ar"`
	Slug          string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description   string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text;column:description_ar"`
	ImageURL      string `gorm:"type:varchar(500);column:image_url"`
	SortOrder     int    `gorm:"not null;default:0;column:sort_order"`
	IsActive      bool   `gorm:"not null;default:false;column:is_active"`
}

func (Category) TableName() string { return "categories" }

// Product is an exported agricultural product
type Product struct {
	BaseModel
	CategoryID    *uuid.UUID `gorm:"type:uuid;column:category_id;index"`
	Category      *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name          string     `gorm:"type:varchar(200);not null"`
	NameAr        string     `gorm:"type:varchar(200);column:name_ar"`
	Slug          string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Summary       string     `gorm:"type:varchar(500)"`
	SummaryAr     string     `gorm:"type:varchar(500);column:summary_ar"`
	Description   string     `gorm:"type:text"`
	DescriptionAr string     `gorm:"type:text;column:description_ar"`
	Origin        string     `gorm:"type:varchar(200)"`
	OriginAr      string     `gorm:"type:varchar(200);column:origin_ar"`
	Season        string     `gorm:"type:varchar(100)"`
	Packaging     string     `gorm:"type:varchar(200)"`
	ImageURL      string     `gorm:"type:varchar(500);column:image_url"`
	IsFeatured    bool       `gorm:"not null;default:false;column:is_featured;index"`
	IsActive      bool       `gorm:"not null;default:false;column:is_active;index"`
	SortOrder     int        `gorm:"not null;default:0;column:sort_order"`
}

func (Product) TableName() string { return "products" }

// BlogPostStatus is the publication state of a post
type BlogPostStatus string

const (
	BlogPostStatusDraft     BlogPostStatus = "draft"
	BlogPostStatusScheduled BlogPostStatus = "scheduled"
	BlogPostStatusPublished BlogPostStatus = "published"
)

// BlogPost is a bilingual article. Content is Markdown.
type BlogPost struct {
	BaseModel
	Title         string         `gorm:"type:varchar(300);not null"`
	TitleAr       string         `gorm:"type:varchar(300);column:title_ar"`
	Slug          string         `gorm:"type:varchar(300);not null;uniqueIndex"`
	Excerpt       string         `gorm:"type:varchar(1000)"`
	ExcerptAr     string         `gorm:"type:varchar(1000);column:excerpt_ar"`
	Content       string         `gorm:"type:text"`
	ContentAr     string         `gorm:"type:text;column:content_ar"`
	CoverImageURL string         `gorm:"type:varchar(500);column:cover_image_url"`
	Author        string         `gorm:"type:varchar(200)"`
	Status        BlogPostStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishAt     *time.Time     `gorm:"column:publish_at;index"`
	PublishedAt   *time.Time     `gorm:"column:published_at;index"`
}

func (BlogPost) TableName() string { return "blog_posts" }

// IsPublic reports whether the post may be shown on the public site at now
func (p *BlogPost) IsPublic(now time.Time) bool {
	return p.Status == BlogPostStatusPublished && p.PublishedAt != nil && !p.PublishedAt.After(now)
}

// ExportCountry is a destination market shown on the site
type ExportCountry struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null"`
	NameAr    string `gorm:"type:varchar(200);column:name_ar"`
	Code      string `gorm:"type:varchar(2);not null;uniqueIndex"`
	Region    string `gorm:"type:varchar(100)"`
	FlagURL   string `gorm:"type:varchar(500);column:flag_url"`
	SortOrder int    `gorm:"not null;default:0;column:sort_order"`
	IsActive  bool   `gorm:"not null;default:false;column:is_active"`
}

func (ExportCountry) TableName() string { return "export_countries" }

// HomepageSection names a curated block of the landing page
type HomepageSection string

const (
	HomepageSectionProducts   HomepageSection = "products"
	HomepageSectionCategories HomepageSection = "categories"
	HomepageSectionBlog       HomepageSection = "blog"
	HomepageSectionCountries  HomepageSection = "countries"
)

// HomepageSections lists the sections in page order
var HomepageSections = []HomepageSection{
	HomepageSectionCategories,
	HomepageSectionProducts,
	HomepageSectionCountries,
	HomepageSectionBlog,
}

// IsValid reports whether s is a known section
func (s HomepageSection) IsValid() bool {
	for _, known := range HomepageSections {
		if s == known {
			return true
		}
	}
	return false
}

// HomepageItem selects one catalog or blog entry for the landing page
type HomepageItem struct {
	BaseModel
	Section      HomepageSection `gorm:"type:varchar(20);not null;uniqueIndex:idx_homepage_section_entity,priority:1"`
	EntityID     uuid.UUID       `gorm:"type:uuid;not null;column:entity_id;uniqueIndex:idx_homepage_section_entity,priority:2"`
	DisplayOrder int             `gorm:"not null;default:0;column:display_order"`
}

func (HomepageItem) TableName() string { return "homepage_items" }

// ContactMessage is an inquiry submitted through the public contact form
type ContactMessage struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(50)"`
	Company   string `gorm:"type:varchar(200)"`
	Country   string `gorm:"type:varchar(100)"`
	Subject   string `gorm:"type:varchar(300)"`
	Message   string `gorm:"type:text;not null"`
	Language  string `gorm:"type:varchar(5);not null;default:'en'"`
	IsRead    bool   `gorm:"not null;default:false;column:is_read;index"`
	ReadAt    *time.Time
	IPAddress string `gorm:"type:varchar(64);column:ip_address"`
	UserAgent string `gorm:"type:text;column:user_agent"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// SiteSettingsID is the primary key of the single settings row
const SiteSettingsID = "main"

// SiteSettings holds company information shown across the site
type SiteSettings struct {
	ID            string `gorm:"type:varchar(20);primaryKey"`
	CompanyName   string `gorm:"type:varchar(200);not null"`
	CompanyNameAr string `gorm:"type:varchar(200);column:company_name_ar"`
	Tagline       string `gorm:"type:varchar(300)"`
	TaglineAr     string `gorm:"type:varchar(300);column:tagline_ar"`
	About         string `gorm:"type:text"`
	AboutAr       string `gorm:"type:text;column:about_ar"`
	Address       string `gorm:"type:varchar(500)"`
	AddressAr     string `gorm:"type:varchar(500);column:address_ar"`
	Email         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(50)"`
	WhatsApp      string `gorm:"type:varchar(50);column:whatsapp"`
	FacebookURL   string `gorm:"type:varchar(500);column:facebook_url"`
	InstagramURL  string `gorm:"type:varchar(500);column:instagram_url"`
	LinkedInURL   string `gorm:"type:varchar(500);column:linkedin_url"`
	// TickerSpeed is the marquee speed in pixels per second
	TickerSpeed int       `gorm:"not null;default:40;column:ticker_speed"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (SiteSettings) TableName() string { return "site_settings" }

// DefaultSiteSettings returns the row created on first access
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:            SiteSettingsID,
		CompanyName:   "Harvest Export",
		CompanyNameAr: "هارفست للتصدير",
		TickerSpeed:   40,
	}
}

// AdminUser can sign in to the admin panel
type AdminUser struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(200);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash"`
	IsActive     bool   `gorm:"not null;default:false;column:is_active"`
	LastLoginAt  *time.Time
}

func (AdminUser) TableName() string { return "admin_users" }

// AuditAction represents the type of change recorded in the audit log
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog records one admin modification
type AuditLog struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID      string      `gorm:"type:varchar(100);column:user_id;index"`
	UserEmail   string      `gorm:"type:varchar(255);column:user_email"`
	Action      AuditAction `gorm:"type:varchar(20);not null"`
	EntityType  string      `gorm:"type:varchar(50);not null;column:entity_type;index"`
	EntityID    *uuid.UUID  `gorm:"type:uuid;column:entity_id"`
	NewValues   string      `gorm:"type:text;column:new_values"`
	IPAddress   string      `gorm:"type:varchar(64);column:ip_address"`
	UserAgent   string      `gorm:"type:text;column:user_agent"`
	RequestID   string      `gorm:"type:varchar(100);column:request_id"`
	PerformedAt time.Time   `gorm:"not null;column:performed_at;index"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Media is an uploaded image referenced by content
type Media struct {
	BaseModel
	FileName    string `gorm:"type:varchar(255);not null;column:file_name"`
	ContentType string `gorm:"type:varchar(100);not null;column:content_type"`
	Size        int64  `gorm:"not null"`
	StoragePath string `gorm:"type:varchar(500);not null;column:storage_path"`
	URL         string `gorm:"type:varchar(500);not null"`
}

func (Media) TableName() string { return "media" }

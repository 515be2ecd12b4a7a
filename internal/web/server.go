// Package web renders the public bilingual site.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/i18n"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

//go:embed templates/*.html static
var assets embed.FS

// Services are the read and submit operations the pages use
type Services struct {
	Homepage   *service.HomepageService
	Categories *service.CategoryService
	Products   *service.ProductService
	Posts      *service.BlogPostService
	Countries  *service.ExportCountryService
	Settings   *service.SiteSettingsService
	Contact    *service.ContactService
}

// Server renders the public pages
type Server struct {
	svc       Services
	bundle    *i18n.Bundle
	templates map[string]*template.Template
	static    http.Handler
	validate  *validator.Validate
	baseURL   string
	logger    *zap.Logger
	now       func() time.Time
}

// NewServer parses the embedded templates. baseURL is the public origin used in the sitemap.
func NewServer(svc Services, bundle *i18n.Bundle, baseURL string, logger *zap.Logger) (*Server, error) {
	templates, err := parseTemplates(assets)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	return &Server{
		svc:       svc,
		bundle:    bundle,
		templates: templates,
		static:    http.FileServer(http.FS(static)),
		validate:  validator.New(),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// Mount registers the page routes on r. limitContact guards the contact form post.
func (s *Server) Mount(r chi.Router, limitContact func(http.Handler) http.Handler) {
	r.Get("/", s.home)
	r.Get("/products", s.products)
	r.Get("/products/{slug}", s.product)
	r.Get("/categories/{slug}", s.category)
	r.Get("/blog", s.blog)
	r.Get("/blog/{slug}", s.post)
	r.Get("/about", s.about)
	r.Get("/contact", s.contactForm)
	r.With(limitContact).Post("/contact", s.submitContact)
	r.Get("/lang/{code}", s.switchLanguage)
	r.Get("/sitemap.xml", s.sitemap)
	r.Get("/robots.txt", s.robots)
	r.Handle("/static/*", http.StripPrefix("/static/", cacheStatic(s.static)))
	r.NotFound(s.notFound)
}

func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

// newPage builds the shared page frame for r in the negotiated language
func (s *Server) newPage(r *http.Request, section string) *Page {
	return s.newPageLang(r, section, i18n.FromContext(r.Context()))
}

// newPageLang builds the page frame for an explicit language
func (s *Server) newPageLang(r *http.Request, section string, lang domain.Language) *Page {
	alt := domain.LanguageArabic
	if lang == domain.LanguageArabic {
		alt = domain.LanguageEnglish
	}

	p := &Page{
		Lang:    lang,
		AltLang: alt,
		Dir:     i18n.Direction(lang),
		RTL:     lang.IsRTL(),
		Section: section,
		Path:    pathWithoutLang(r.URL),
		Year:    s.now().Year(),
		bundle:  s.bundle,
	}

	settings, err := s.svc.Settings.GetPublic(r.Context(), lang)
	if err != nil {
		s.logger.Warn("failed to load site settings", zap.Error(err))
		settings = &domain.PublicSettingsDTO{CompanyName: "Harvest Export"}
	}
	p.Settings = settings

	if s.baseURL != "" {
		p.Canonical = s.baseURL + r.URL.Path
		for _, l := range domain.SupportedLanguages {
			p.Alternates = append(p.Alternates, Alternate{Lang: l, URL: s.baseURL + r.URL.Path + "?lang=" + string(l)})
		}
	}
	return p
}

// pathWithoutLang is the request URI minus any lang parameter, used as the language switch target
func pathWithoutLang(u *url.URL) string {
	q := u.Query()
	q.Del("lang")
	if len(q) == 0 {
		return u.Path
	}
	return u.Path + "?" + q.Encode()
}

// render executes the page template into a buffer so a failing template never sends a partial page
func (s *Server) render(w http.ResponseWriter, status int, name string, p *Page) {
	t, ok := s.templates[name]
	if !ok {
		s.logger.Error("unknown template", zap.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		s.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorView struct {
	Title   string
	Message string
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "")
	p.Data = errorView{Title: p.T("error.not_found_title"), Message: p.T("error.not_found")}
	s.render(w, http.StatusNotFound, "error", p)
}

// fail renders the not-found page for ErrNotFound and the server error page otherwise
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, service.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	s.logger.Error("failed to "+action, zap.String("path", r.URL.Path), zap.Error(err))
	p := s.newPage(r, "")
	p.Data = errorView{Title: p.T("error.server_title"), Message: p.T("error.server")}
	s.render(w, http.StatusInternalServerError, "error", p)
}

package web

import (
	"encoding/xml"
	"net/http"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/repository"
	"go.uber.org/zap"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string        `xml:"loc"`
	LastMod string        `xml:"lastmod,omitempty"`
	Links   []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// sitemap lists every public page with its language alternates
func (s *Server) sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	paths := []string{"/", "/products", "/blog", "/about", "/contact"}
	lastMod := map[string]string{}

	categories, err := s.svc.Categories.ListPublic(ctx, domain.LanguageEnglish)
	if err != nil {
		s.sitemapError(w, err)
		return
	}
	for _, c := range categories {
		paths = append(paths, "/categories/"+c.Slug)
	}

	products, err := s.svc.Products.ListPublic(ctx, "", domain.LanguageEnglish)
	if err != nil {
		s.sitemapError(w, err)
		return
	}
	for _, p := range products {
		paths = append(paths, "/products/"+p.Slug)
	}

	for page := 1; ; page++ {
		result, err := s.svc.Posts.ListPublic(ctx, page, repository.MaxPageSize, domain.LanguageEnglish)
		if err != nil {
			s.sitemapError(w, err)
			return
		}
		posts, _ := result.Data.([]domain.PublicBlogPostDTO)
		for _, p := range posts {
			path := "/blog/" + p.Slug
			paths = append(paths, path)
			if len(p.PublishedAt) >= 10 {
				lastMod[path] = p.PublishedAt[:10]
			}
		}
		if len(posts) == 0 || page >= result.TotalPages {
			break
		}
	}

	set := urlSet{
		NS:    "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, path := range paths {
		u := sitemapURL{Loc: s.baseURL + path, LastMod: lastMod[path]}
		for _, lang := range domain.SupportedLanguages {
			u.Links = append(u.Links, sitemapLink{
				Rel:      "alternate",
				Hreflang: string(lang),
				Href:     s.baseURL + path + "?lang=" + string(lang),
			})
		}
		set.URLs = append(set.URLs, u)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		s.logger.Warn("failed to write sitemap", zap.Error(err))
	}
}

func (s *Server) sitemapError(w http.ResponseWriter, err error) {
	s.logger.Error("failed to build sitemap", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *Server) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	body := "User-agent: *\nDisallow: /api/\nDisallow: /lang/\n"
	if s.baseURL != "" {
		body += "Sitemap: " + s.baseURL + "/sitemap.xml\n"
	}
	_, _ = w.Write([]byte(body))
}

package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/i18n"
	"github.com/harvest-export/website/internal/marquee"
)

// marqueeItemWidth estimates one ticker item in pixels for the CSS fallback loop
const marqueeItemWidth = 160

// blogPageSize is the number of posts per listing page
const blogPageSize = 9

type homeView struct {
	Categories []domain.PublicCategoryDTO
	Products   []domain.PublicProductDTO
	Posts      []domain.PublicBlogPostDTO
	Countries  []domain.PublicCountryDTO
	Ticker     tickerView
}

// tickerView is the server-side starting state of the country strip
type tickerView struct {
	Speed       int
	LoopSeconds string
	// Phase is the scrolled fraction of one loop, in [0, 1)
	Phase string
	// Delay is the negative CSS animation delay that starts the fallback loop at Phase
	Delay   string
	Reverse bool
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "home")

	resolved, err := s.svc.Homepage.Resolve(r.Context(), p.Lang)
	if err != nil {
		s.fail(w, r, err, "resolve homepage")
		return
	}

	p.Data = homeView{
		Categories: resolved.Categories,
		Products:   resolved.Products,
		Posts:      resolved.Posts,
		Countries:  marquee.Repeat(resolved.Countries, 2),
		Ticker:     tickerState(len(resolved.Countries), p.Settings.TickerSpeed, p.RTL, s.now()),
	}
	s.render(w, http.StatusOK, "home", p)
}

// tickerState runs a ticker from midnight UTC to now so every page load joins the strip
// where the shared clock has it
func tickerState(n, speed int, rtl bool, now time.Time) tickerView {
	view := tickerView{
		Speed:       speed,
		LoopSeconds: loopSeconds(n, speed),
		Phase:       "0",
		Delay:       "0",
		Reverse:     rtl,
	}

	ticker, err := marquee.NewTicker(float64(n*marqueeItemWidth), float64(speed), rtl)
	if err != nil {
		return view
	}
	now = now.UTC()
	ticker.Advance(now.Sub(now.Truncate(24 * time.Hour)))

	phase := ticker.Offset() / ticker.Width()
	view.Phase = strconv.FormatFloat(phase, 'f', 4, 64)
	view.Reverse = ticker.Reversed()
	if loop := marquee.LoopDuration(ticker.Width(), ticker.Speed()); loop > 0 {
		view.Delay = strconv.FormatFloat(-phase*loop.Seconds(), 'f', 2, 64)
	}
	return view
}

// loopSeconds is the CSS animation length for n ticker items at speed px/s
func loopSeconds(n, speed int) string {
	d := marquee.LoopDuration(float64(n*marqueeItemWidth), float64(speed))
	if d <= 0 {
		return "0"
	}
	return strconv.FormatFloat(d.Round(100*time.Millisecond).Seconds(), 'f', 1, 64)
}

type productsView struct {
	Category   *domain.PublicCategoryDTO
	Categories []domain.PublicCategoryDTO
	Products   []domain.PublicProductDTO
}

func (s *Server) products(w http.ResponseWriter, r *http.Request) {
	s.renderProducts(w, r, "")
}

func (s *Server) category(w http.ResponseWriter, r *http.Request) {
	s.renderProducts(w, r, chi.URLParam(r, "slug"))
}

func (s *Server) renderProducts(w http.ResponseWriter, r *http.Request, categorySlug string) {
	p := s.newPage(r, "products")
	view := productsView{}

	if categorySlug != "" {
		category, err := s.svc.Categories.GetPublicBySlug(r.Context(), categorySlug, p.Lang)
		if err != nil {
			s.fail(w, r, err, "get category")
			return
		}
		view.Category = category
		p.Description = category.Description
	}

	categories, err := s.svc.Categories.ListPublic(r.Context(), p.Lang)
	if err != nil {
		s.fail(w, r, err, "list categories")
		return
	}
	view.Categories = categories

	products, err := s.svc.Products.ListPublic(r.Context(), categorySlug, p.Lang)
	if err != nil {
		s.fail(w, r, err, "list products")
		return
	}
	view.Products = products

	p.Data = view
	s.render(w, http.StatusOK, "products", p)
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "products")
	product, err := s.svc.Products.GetPublicBySlug(r.Context(), chi.URLParam(r, "slug"), p.Lang)
	if err != nil {
		s.fail(w, r, err, "get product")
		return
	}
	p.Description = product.Summary
	p.Data = product
	s.render(w, http.StatusOK, "product", p)
}

type blogView struct {
	Posts      []domain.PublicBlogPostDTO
	Page       int
	TotalPages int
	PrevPage   int
	NextPage   int
}

func (s *Server) blog(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "blog")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	result, err := s.svc.Posts.ListPublic(r.Context(), page, blogPageSize, p.Lang)
	if err != nil {
		s.fail(w, r, err, "list blog posts")
		return
	}
	posts, ok := result.Data.([]domain.PublicBlogPostDTO)
	if !ok {
		s.fail(w, r, fmt.Errorf("unexpected blog page type %T", result.Data), "list blog posts")
		return
	}
	if page > 1 && len(posts) == 0 {
		s.notFound(w, r)
		return
	}

	p.Data = blogView{
		Posts:      posts,
		Page:       page,
		TotalPages: result.TotalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
	}
	s.render(w, http.StatusOK, "blog", p)
}

func (s *Server) post(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "blog")
	post, err := s.svc.Posts.GetPublicBySlug(r.Context(), chi.URLParam(r, "slug"), p.Lang)
	if err != nil {
		s.fail(w, r, err, "get blog post")
		return
	}
	p.Description = post.Excerpt
	p.Data = post
	s.render(w, http.StatusOK, "post", p)
}

type aboutView struct {
	Countries []domain.PublicCountryDTO
}

func (s *Server) about(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "about")
	countries, err := s.svc.Countries.ListPublic(r.Context(), p.Lang)
	if err != nil {
		s.fail(w, r, err, "list countries")
		return
	}
	p.Data = aboutView{Countries: countries}
	s.render(w, http.StatusOK, "about", p)
}

// switchLanguage stores the choice in a cookie and returns to the page the visitor came from
func (s *Server) switchLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := domain.ParseLanguage(chi.URLParam(r, "code"))
	if !ok {
		s.notFound(w, r)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
}

// safeNext only allows local absolute paths as redirect targets
func safeNext(next string) string {
	if next == "" || next[0] != '/' || (len(next) > 1 && (next[1] == '/' || next[1] == '\\')) {
		return "/"
	}
	return next
}

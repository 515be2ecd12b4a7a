package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"
	"unicode"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/i18n"
)

// Page is the data every template renders against
type Page struct {
	Lang        domain.Language
	AltLang     domain.Language
	Dir         string
	RTL         bool
	Section     string
	Path        string
	Canonical   string
	Alternates  []Alternate
	Description string
	Settings    *domain.PublicSettingsDTO
	Year        int
	Flash       string
	FlashKind   string
	Data        interface{}

	bundle *i18n.Bundle
}

// Alternate is an hreflang link to the same page in another language
type Alternate struct {
	Lang domain.Language
	URL  string
}

// T translates key into the page language
func (p *Page) T(key string) string {
	return p.bundle.T(p.Lang, key)
}

// TF translates key and fills its {n} placeholders
func (p *Page) TF(key string, args ...interface{}) string {
	return p.bundle.TF(p.Lang, key, args...)
}

type postCardView struct {
	Page *Page
	Post domain.PublicBlogPostDTO
}

type fieldView struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Required bool
	Error    string
}

var funcs = template.FuncMap{
	"postCard": func(p *Page, post domain.PublicBlogPostDTO) postCardView {
		return postCardView{Page: p, Post: post}
	},
	"field": func(p *Page, errs map[string]string, name, typ, value string, required bool) fieldView {
		return fieldView{
			Name:     name,
			Label:    p.T("contact." + name),
			Type:     typ,
			Value:    value,
			Required: required,
			Error:    errs[name],
		}
	},
	"date":       formatDate,
	"safeHTML":   func(s string) template.HTML { return template.HTML(s) },
	"paragraphs": paragraphs,
	"digits":     digits,
}

// pageTemplates lists the page files, each parsed together with the layout
var pageTemplates = []string{"home", "products", "product", "blog", "post", "about", "contact", "error"}

func parseTemplates(files fs.FS) (map[string]*template.Template, error) {
	set := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		t, err := template.New(name).Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		set[name] = t
	}
	return set, nil
}

// formatDate shows the calendar day of an API timestamp
func formatDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02")
}

// paragraphs turns blank-line separated plain text into escaped <p> elements
func paragraphs(text string) template.HTML {
	var b strings.Builder
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(template.HTMLEscapeString(block), "\n", "<br>"))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}

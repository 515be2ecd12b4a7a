// Package content renders blog Markdown into sanitized HTML.
package content

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to HTML that is safe to embed in a page
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strip  *bluemonday.Policy
}

// NewRenderer builds a renderer with GitHub-flavoured Markdown and a UGC sanitisation policy
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("dir").Globally()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md:     md,
		policy: policy,
		strip:  bluemonday.StrictPolicy(),
	}
}

// Render converts Markdown to sanitized HTML
func (r *Renderer) Render(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// PlainText renders Markdown and strips every tag, collapsing whitespace
func (r *Renderer) PlainText(source string) (string, error) {
	rendered, err := r.Render(source)
	if err != nil {
		return "", err
	}
	text := stdhtml.UnescapeString(r.strip.Sanitize(rendered))
	return strings.Join(strings.Fields(text), " "), nil
}

// Excerpt returns at most maxRunes runes of the plain text, cut on a word boundary
func (r *Renderer) Excerpt(source string, maxRunes int) (string, error) {
	text, err := r.PlainText(source)
	if err != nil {
		return "", err
	}
	return Truncate(text, maxRunes), nil
}

// Truncate shortens s to maxRunes runes on a word boundary and appends an ellipsis
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

package i18n

import (
	"context"

	"github.com/harvest-export/website/internal/domain"
)

// CookieName remembers the visitor's explicit language choice
const CookieName = "lang"

type contextKey string

const languageKey contextKey = "language"

// WithLanguage stores the negotiated language in ctx
func WithLanguage(ctx context.Context, lang domain.Language) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// FromContext returns the negotiated language, or English when none was set
func FromContext(ctx context.Context) domain.Language {
	if lang, ok := ctx.Value(languageKey).(domain.Language); ok && lang != "" {
		return lang
	}
	return domain.LanguageEnglish
}

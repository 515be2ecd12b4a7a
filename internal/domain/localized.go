package domain

import "strings"

// Language is a site language code
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// SupportedLanguages lists the languages the site is published in. The first is the fallback.
var SupportedLanguages = []Language{LanguageEnglish, LanguageArabic}

// ParseLanguage returns the supported language for code, or ok=false
func ParseLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// IsRTL reports whether the language is written right to left
func (l Language) IsRTL() bool {
	return l == LanguageArabic
}

// Localize picks the variant of a bilingual field for lang.
// Arabic falls back to the base value when no translation has been entered.
func Localize(lang Language, base, ar string) string {
	if lang == LanguageArabic && strings.TrimSpace(ar) != "" {
		return ar
	}
	return base
}

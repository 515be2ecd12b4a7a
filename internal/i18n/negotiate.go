package i18n

import (
	"github.com/harvest-export/website/internal/domain"
	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// Negotiate picks the page language. An explicit query parameter wins over the
// cookie, which wins over Accept-Language. fallback is used when none match.
func Negotiate(query, cookie, acceptLanguage string, fallback domain.Language) domain.Language {
	if lang, ok := domain.ParseLanguage(query); ok {
		return lang
	}
	if lang, ok := domain.ParseLanguage(cookie); ok {
		return lang
	}
	if lang, ok := MatchAcceptLanguage(acceptLanguage); ok {
		return lang
	}
	if _, ok := domain.ParseLanguage(string(fallback)); ok {
		return fallback
	}
	return domain.LanguageEnglish
}

// MatchAcceptLanguage matches an Accept-Language header against the site languages
func MatchAcceptLanguage(header string) (domain.Language, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	if index == 1 {
		return domain.LanguageArabic, true
	}
	return domain.LanguageEnglish, true
}

package middleware

import (
	"net/http"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/i18n"
)

// Locale negotiates the request language from ?lang, the language cookie and Accept-Language,
// in that order, and stores it in the request context.
func Locale(fallback domain.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie := ""
			if c, err := r.Cookie(i18n.CookieName); err == nil {
				cookie = c.Value
			}

			lang := i18n.Negotiate(r.URL.Query().Get("lang"), cookie, r.Header.Get("Accept-Language"), fallback)

			h := w.Header()
			h.Set("Content-Language", string(lang))
			h.Add("Vary", "Accept-Language")
			h.Add("Vary", "Cookie")

			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), lang)))
		})
	}
}

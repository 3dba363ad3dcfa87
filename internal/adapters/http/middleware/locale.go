package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"clubdesk/internal/domain/category"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

type localeKey struct{}

// Locale resolves the request language (ar or fr) and stores it in the context.
// The lang query parameter wins over Accept-Language; fallback is used when neither matches.
func Locale(fallback language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := ResolveTag(r, fallback)
			w.Header().Set("Content-Language", tag.String())
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey{}, tag)))
		})
	}
}

// ResolveTag picks the supported language for a request.
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return category.MatchTag(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return category.MatchTag(tags...)
		}
	}
	return category.MatchTag(fallback)
}

// LocaleFromContext returns the language stored by Locale, Arabic if none.
func LocaleFromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey{}).(language.Tag); ok {
		return tag
	}
	return language.Arabic
}

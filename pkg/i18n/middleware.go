package i18n

import "net/http"

// Middleware determines the client's preferred locale and stores it in the
// request context, where Tc and Nc pick it up. When extr is nil the
// DefaultLocaleExtractor is used; when the extractor finds nothing the
// built-in default locale is stored.
func Middleware(extr LocaleExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLocaleExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := extr(r)
			if locale == "" {
				locale = DefaultLocale
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
		})
	}
}

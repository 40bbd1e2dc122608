package i18n

import (
	"net/http"
	"strings"
)

// LocaleExtractor derives a locale code from an HTTP request. An empty
// return means the extractor found nothing usable.
type LocaleExtractor func(r *http.Request) string

// ExtractorConfig configures DefaultLocaleExtractor.
type ExtractorConfig struct {
	CookieName       string
	QueryParamName   string
	SupportedLocales []string
}

// ExtractorOption configures the locale extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie checked for a locale preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a locale.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLocales restricts extraction to the given locale codes.
// Codes outside the list are ignored; region variants fall back to their
// base language when the base is supported.
func WithSupportedLocales(locales ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(locales) > 0 {
			c.SupportedLocales = locales
		}
	}
}

// DefaultLocaleExtractor checks, in priority order: the locale cookie, the
// query parameter, and the Accept-Language header. The first usable value
// wins. Defaults: cookie "lang", query parameter "lang".
func DefaultLocaleExtractor(opts ...ExtractorOption) LocaleExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	accept := func(code string) string {
		code = normalizeLocale(strings.TrimSpace(code))
		if code == "" {
			return ""
		}
		if len(config.SupportedLocales) == 0 {
			return code
		}
		for _, s := range config.SupportedLocales {
			if strings.EqualFold(s, code) {
				return code
			}
		}
		// Region variant falls back to its base language.
		if base, _, found := strings.Cut(code, "-"); found {
			for _, s := range config.SupportedLocales {
				if strings.EqualFold(s, base) {
					return base
				}
			}
		}
		return ""
	}

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if locale := accept(cookie.Value); locale != "" {
					return locale
				}
			}
		}

		if config.QueryParamName != "" {
			if locale := accept(r.URL.Query().Get(config.QueryParamName)); locale != "" {
				return locale
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			if len(config.SupportedLocales) > 0 {
				return MatchAcceptLanguage(header, config.SupportedLocales, "")
			}
			if locales := parseAcceptLanguageHeader(header); len(locales) > 0 {
				return locales[0].locale
			}
		}
		return ""
	}
}

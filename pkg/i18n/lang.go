package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the built-in fallback locale active at startup.
const DefaultLocale = "en"

// maxLocaleLength bounds locale codes; RFC 5646 recommends 35 characters.
const maxLocaleLength = 35

// maxAcceptLanguageLength caps Accept-Language headers. 4KB is generous for
// legitimate clients while preventing memory exhaustion from hostile ones.
const maxAcceptLanguageLength = 4096

// normalizeLocale lowercases and canonicalizes a locale code. Codes that are
// well-formed BCP 47 tags are canonicalized through x/text (ZH-cn → zh-cn);
// anything else is kept as trimmed lowercase so SetLocale stays permissive.
// Returns "" only for empty or oversized input.
func normalizeLocale(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxLocaleLength {
		return ""
	}
	if tag, err := language.Parse(code); err == nil {
		return strings.ToLower(tag.String())
	}
	return strings.ToLower(code)
}

// canonicalLocale is the strict variant of normalizeLocale used for locale
// inference from file names: it returns "" unless the code parses as a BCP
// 47 tag.
func canonicalLocale(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxLocaleLength {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return strings.ToLower(tag.String())
}

// localeWithQ pairs a language tag with its Accept-Language quality value.
type localeWithQ struct {
	locale string
	q      float64
}

// parseAcceptLanguageHeader parses an Accept-Language header per RFC 7231,
// dropping malformed entries and ordering the rest by descending quality.
func parseAcceptLanguageHeader(header string) []localeWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var locales []localeWithQ
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, params, _ := strings.Cut(part, ";")
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}

		q := 1.0
		if params = strings.TrimSpace(params); strings.HasPrefix(params, "q=") {
			if v, err := strconv.ParseFloat(params[2:], 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		locales = append(locales, localeWithQ{locale: code, q: q})
	}

	slices.SortStableFunc(locales, func(a, b localeWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return locales
}

// MatchAcceptLanguage negotiates an Accept-Language header against the
// supported locale codes. Exact matches win first in quality order, then
// base-language matches (en-US → en). Falls back to defaultLocale when
// nothing matches.
func MatchAcceptLanguage(header string, supported []string, defaultLocale string) string {
	if header == "" || len(supported) == 0 {
		return defaultLocale
	}

	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = strings.ToLower(s)
	}

	locales := parseAcceptLanguageHeader(header)

	for _, lq := range locales {
		if slices.Contains(normalized, lq.locale) {
			return lq.locale
		}
	}
	for _, lq := range locales {
		if base, _, found := strings.Cut(lq.locale, "-"); found {
			if slices.Contains(normalized, base) {
				return base
			}
		}
	}
	return defaultLocale
}

package i18n

import "context"

// localeContextKey is the key for the locale stored in a request context.
type localeContextKey struct{}

// WithLocale returns a context carrying the given locale. Used by the HTTP
// middleware and by callers that thread a per-request locale through
// report generation.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, normalizeLocale(locale))
}

// LocaleFromContext returns the locale stored in the context, or "" when
// none is set. Tc and Nc treat "" as the active locale.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}

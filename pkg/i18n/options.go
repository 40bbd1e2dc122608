package i18n

import "log/slog"

// Option configures a Translator during New.
type Option func(*Translator)

// WithDefaultLocale sets the fallback locale consulted when a key is absent
// from the requested locale's catalog. The active locale starts here too.
func WithDefaultLocale(locale string) Option {
	return func(t *Translator) {
		if norm := normalizeLocale(locale); norm != "" {
			t.defaultLocale = norm
			t.activeLocale = norm
		}
	}
}

// WithSource registers a translation source to load during construction.
// Sources load in the order given, after the built-in catalogs.
func WithSource(src Source) Option {
	return func(t *Translator) {
		if src != nil {
			t.sources = append(t.sources, src)
		}
	}
}

// WithoutBuiltins skips loading the embedded catalogs, leaving the registry
// empty until sources are loaded.
func WithoutBuiltins() Option {
	return func(t *Translator) {
		t.skipBuiltins = true
	}
}

// WithFallbackToKey controls whether an unresolvable key resolves to itself.
// Default is true; disabling it makes misses return "" instead, the strict
// variant for callers that must not render untranslated keys.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger provides the logger used for load diagnostics and missing-key
// warnings. A discard logger is used when not set.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationLogging enables a warning per unresolved lookup.
// Off by default to keep resolution silent on the hot path.
func WithMissingTranslationLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}

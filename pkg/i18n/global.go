package i18n

import (
	"context"
	"io"
	"sync"
)

// The package-level API mirrors the configure-then-render workflow of a
// report pipeline: load translations and set the locale once during setup,
// resolve keys everywhere else. It delegates to a lazily built default
// Translator carrying the embedded catalogs.

var (
	defaultMu sync.RWMutex
	defaultTr *Translator
)

// Default returns the process-wide default translator, building it from the
// embedded catalogs on first use.
func Default() *Translator {
	defaultMu.RLock()
	t := defaultTr
	defaultMu.RUnlock()
	if t != nil {
		return t
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTr == nil {
		// Embedded catalogs are compiled in; loading them cannot fail
		// short of a broken build.
		defaultTr, _ = New(context.Background())
	}
	return defaultTr
}

// SetDefault replaces the process-wide default translator. Intended for
// application startup or tests; not for concurrent reconfiguration.
func SetDefault(t *Translator) {
	if t == nil {
		return
	}
	defaultMu.Lock()
	defaultTr = t
	defaultMu.Unlock()
}

// T resolves a dotted key in the active locale of the default translator.
// This is the lookup primitive report code calls everywhere.
func T(key string, args ...string) string {
	return Default().T(key, args...)
}

// Tl resolves a dotted key in an explicitly given locale.
func Tl(locale, key string, args ...string) string {
	return Default().Tl(locale, key, args...)
}

// Tc resolves a dotted key in the locale carried by the context.
func Tc(ctx context.Context, key string, args ...string) string {
	return Default().Tc(ctx, key, args...)
}

// N resolves a plural-aware key in the active locale.
func N(key string, n int, args ...string) string {
	return Default().N(key, n, args...)
}

// SetLocale switches the process-wide active locale after normalizing case.
func SetLocale(code string) {
	Default().SetLocale(code)
}

// GetLocale returns the process-wide active locale.
func GetLocale() string {
	return Default().Locale()
}

// GetAvailableLocales returns the sorted locale codes currently registered,
// built-in and loaded.
func GetAvailableLocales() []string {
	return Default().AvailableLocales()
}

// LoadTranslationFile parses the document at path and merges it into the
// default translator under the given locale.
func LoadTranslationFile(ctx context.Context, path, locale string) error {
	return Default().LoadFile(ctx, path, locale)
}

// AddTranslationDirectory loads every per-locale document in path into the
// default translator.
func AddTranslationDirectory(ctx context.Context, path string) error {
	return Default().LoadDirectory(ctx, path)
}

// ExportTranslationTemplate writes the locale's catalog (or the default
// catalog when the locale has none) as an editable JSON template.
func ExportTranslationTemplate(locale string, w io.Writer) error {
	return Default().ExportTemplate(locale, w)
}

// ExportTranslationTemplateToFile writes the template to a file at path.
func ExportTranslationTemplateToFile(locale, path string) error {
	return Default().ExportTemplateToFile(locale, path)
}

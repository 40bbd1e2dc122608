package i18n

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"sync"
)

// Translator owns the locale registry: a mapping from normalized locale code
// to its translation catalog, plus the process-wide active locale consulted
// by lookups that do not name a locale explicitly.
//
// Catalog merges and locale assignment take the write lock; resolution takes
// the read lock, matching the configure-once-then-read-heavily usage of a
// report pipeline.
type Translator struct {
	mu            sync.RWMutex
	catalogs      map[string]Catalog
	activeLocale  string
	defaultLocale string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger

	// construction-time state consumed by New
	sources      []Source
	skipBuiltins bool
}

// New builds a Translator. Unless WithoutBuiltins is given, the embedded
// English and Chinese catalogs are registered first; sources added with
// WithSource load afterwards in order, so they can override built-in keys.
func New(ctx context.Context, opts ...Option) (*Translator, error) {
	t := &Translator{
		catalogs:      make(map[string]Catalog),
		activeLocale:  DefaultLocale,
		defaultLocale: DefaultLocale,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if !t.skipBuiltins {
		if err := t.LoadSource(ctx, builtinSource()); err != nil {
			return nil, err
		}
	}
	for _, src := range t.sources {
		if err := t.LoadSource(ctx, src); err != nil {
			return nil, err
		}
	}
	t.sources = nil

	t.logger.InfoContext(ctx, "translation catalogs loaded", "locales", t.AvailableLocales())
	return t, nil
}

// LoadSource loads every catalog the source provides and merges each into
// the registry under its locale.
func (t *Translator) LoadSource(ctx context.Context, src Source) error {
	catalogs, err := src.Load(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for locale, c := range catalogs {
		t.catalogs[locale] = mergeCatalog(t.catalogs[locale], c)
	}
	return nil
}

// Merge merges a catalog into the registry under the given locale. New keys
// are added, existing keys overwritten; nested subtrees merge recursively.
func (t *Translator) Merge(locale string, c Catalog) error {
	norm := normalizeLocale(locale)
	if norm == "" {
		return &LocaleNotFoundError{Locale: locale}
	}
	if err := validateCatalog(c, ""); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.catalogs[norm] = mergeCatalog(t.catalogs[norm], c)
	return nil
}

// Replace installs a catalog for the locale wholesale, discarding whatever
// was registered before. The merge-based loaders are usually what you want.
func (t *Translator) Replace(locale string, c Catalog) error {
	norm := normalizeLocale(locale)
	if norm == "" {
		return &LocaleNotFoundError{Locale: locale}
	}
	if err := validateCatalog(c, ""); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.catalogs[norm] = cloneCatalog(c)
	return nil
}

// LoadFile parses the translation document at path and merges it into the
// registry under the given locale. The format is chosen from the file
// extension (json, yaml, yml, toml). Malformed documents fail with a
// *ParseError naming the offending key path.
func (t *Translator) LoadFile(ctx context.Context, path, locale string) error {
	return t.LoadSource(ctx, NewFileSource(path, locale))
}

// LoadDirectory loads every supported document in path, one file per
// locale, inferring each locale from the file's base name. Files with
// unrecognized names are skipped with a warning.
func (t *Translator) LoadDirectory(ctx context.Context, path string) error {
	return t.LoadSource(ctx, NewDirSource(path).WithLogger(t.logger))
}

// SetLocale switches the active locale after case normalization. The locale
// is not required to have a catalog; lookups against an unknown locale fall
// back to the default catalog.
func (t *Translator) SetLocale(code string) {
	norm := normalizeLocale(code)
	if norm == "" {
		return
	}
	t.mu.Lock()
	t.activeLocale = norm
	t.mu.Unlock()
}

// Locale returns the current active locale.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.activeLocale
}

// AvailableLocales returns the sorted locale codes present in the registry.
func (t *Translator) AvailableLocales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	locales := make([]string, 0, len(t.catalogs))
	for locale := range t.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasTranslation reports whether the locale's own catalog resolves the key,
// without falling back to the default locale. Callers needing strict
// validation use this to detect gaps that T papers over.
func (t *Translator) HasTranslation(locale, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookupIn(normalizeLocale(locale), key)
	return ok
}

// Keys returns every fully-qualified dotted key in the locale's catalog,
// sorted. Handy for template previews and translation-coverage checks.
func (t *Translator) Keys(locale string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.catalogs[normalizeLocale(locale)]
	if !ok {
		return nil
	}
	return flattenCatalog(c, "")
}

// Catalog returns a deep copy of the locale's catalog.
func (t *Translator) Catalog(locale string) (Catalog, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.catalogs[normalizeLocale(locale)]
	if !ok {
		return nil, false
	}
	return cloneCatalog(c), true
}

// T resolves a dotted key in the active locale, substituting {name}
// placeholders from the variadic key/value argument pairs.
//
//	i18n.T("core.structure.overview.alerts_count", "count", "3")
//	// "Alerts (3)"
//
// A key absent from the active locale falls back to the default locale's
// catalog; a key absent everywhere resolves to itself.
func (t *Translator) T(key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.activeLocale, key, args)
}

// Tl resolves a dotted key in an explicitly given locale. An empty locale
// means the active one.
func (t *Translator) Tl(locale, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.coerce(locale), key, args)
}

// Tc resolves a dotted key in the locale carried by the request context,
// falling back to the active locale when the context has none.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.Tl(LocaleFromContext(ctx), key, args...)
}

// N resolves a plural-aware key in the active locale. See Nl.
func (t *Translator) N(key string, n int, args ...string) string {
	return t.Nl("", key, n, args...)
}

// Nl resolves a plural-aware key: for n the leaves key+".zero" (n=0),
// key+".one" (n=1) and key+".other" are consulted in turn, then the bare
// key. The count is exposed to templates as {count} unless the caller
// already supplied one.
func (t *Translator) Nl(locale, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	loc := t.coerce(locale)
	args = ensureCount(args, n)
	params := buildParams(args)

	for _, candidate := range pluralKeys(key, n) {
		if s, ok := t.lookupChained(loc, candidate); ok {
			return substitute(s, params)
		}
	}

	t.missed(loc, key)
	if t.fallbackToKey {
		return substitute(key, params)
	}
	return ""
}

// Nc is the context-locale variant of Nl.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.Nl(LocaleFromContext(ctx), key, n, args...)
}

// resolve implements the lookup chain: locale catalog → default locale
// catalog → the key itself. Callers hold at least the read lock.
func (t *Translator) resolve(locale, key string, args []string) string {
	if key == "" {
		return ""
	}
	params := buildParams(args)

	if s, ok := t.lookupChained(locale, key); ok {
		return substitute(s, params)
	}

	t.missed(locale, key)
	if t.fallbackToKey {
		return substitute(key, params)
	}
	return ""
}

// lookupChained checks the locale's catalog, then the default locale's.
func (t *Translator) lookupChained(locale, key string) (string, bool) {
	if s, ok := t.lookupIn(locale, key); ok {
		return s, true
	}
	if locale != t.defaultLocale {
		return t.lookupIn(t.defaultLocale, key)
	}
	return "", false
}

func (t *Translator) lookupIn(locale, key string) (string, bool) {
	c, ok := t.catalogs[locale]
	if !ok {
		return "", false
	}
	return lookup(c, key)
}

func (t *Translator) coerce(locale string) string {
	if locale == "" {
		return t.activeLocale
	}
	return normalizeLocale(locale)
}

func (t *Translator) missed(locale, key string) {
	if t.logMissing {
		t.logger.Warn("missing translation", "locale", locale, "key", key)
	}
}

func pluralKeys(key string, n int) []string {
	switch n {
	case 0:
		return []string{key + ".zero", key + ".other", key}
	case 1:
		return []string{key + ".one", key + ".other", key}
	default:
		return []string{key + ".other", key}
	}
}

func ensureCount(args []string, n int) []string {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "count" {
			return args
		}
	}
	return append(append(make([]string, 0, len(args)+2), args...), "count", strconv.Itoa(n))
}

// placeholderRegex matches named placeholders of the form {name}.
var placeholderRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// substitute replaces {name} tokens with values from params. Placeholders
// without a matching parameter stay verbatim, which keeps exported
// templates editable.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[1:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// buildParams pairs up variadic key/value arguments. An odd trailing
// argument is ignored.
func buildParams(args []string) map[string]string {
	if len(args) < 2 {
		return nil
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

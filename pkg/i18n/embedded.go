package i18n

import "embed"

// Built-in catalogs shipped with the library. English doubles as the
// default fallback catalog; Chinese covers the most common non-Latin
// deployment of profiling reports.
//
//go:embed locales/*.json
var builtinFS embed.FS

func builtinSource() Source {
	return NewFSSource(builtinFS, "locales")
}

// Package i18n implements the translation layer used by profiling report
// engines: a registry of per-locale translation catalogs with dotted-key
// lookup, named placeholder substitution and a process-wide active locale.
//
// Catalogs are nested string trees addressed by dotted keys such as
// "report.overview" or "core.alerts.title". Leaf values may embed named
// placeholders delimited as {name} which are filled in at resolution time.
//
// The package ships built-in English and Chinese catalogs and can load
// additional locales from JSON, YAML or TOML documents: either a single
// file per locale or a directory where each file's base name is the locale
// code (fr.json, es.yaml, ...). Loaded catalogs merge recursively into
// whatever is already registered for that locale, so a partial translation
// file only overrides the keys it defines.
//
// # Resolution
//
// Lookup never fails: a key missing from the requested locale falls back to
// the default locale's catalog, and a key missing everywhere resolves to the
// key itself. This keeps report rendering going with incomplete
// translations; callers that need strict behavior can disable the key
// fallback with WithFallbackToKey(false) or probe with HasTranslation.
//
// # Usage
//
// Most applications use the package-level default translator, mirroring a
// configuration step performed once before report generation:
//
//	if err := i18n.LoadTranslationFile(ctx, "fr.json", "fr"); err != nil {
//		log.Fatal(err)
//	}
//	i18n.SetLocale("fr")
//	title := i18n.T("report.overview")                     // "Aperçu"
//	alerts := i18n.T("core.structure.overview.alerts_count", "count", "3")
//
// A dedicated instance with its own sources and options is available via
// New for embedding into larger systems:
//
//	tr, err := i18n.New(ctx,
//		i18n.WithDefaultLocale("en"),
//		i18n.WithSource(i18n.NewDirSource("./translations")),
//	)
//
// Translation templates for translators are produced with ExportTemplate;
// the exported document loads back unchanged, so export-then-load
// round-trips key for key.
package i18n

package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profilekit/profilekit/pkg/i18n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "french.json", `{"report": {"overview": "Aperçu"}}`)

	catalogs, err := i18n.NewFileSource(path, "FR").Load(context.Background())
	require.NoError(t, err)

	require.Contains(t, catalogs, "fr") // locale normalized
	report, ok := catalogs["fr"]["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Aperçu", report["overview"])
}

func TestFileSourceUnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "fr.txt", "bonjour")

	_, err := i18n.NewFileSource(path, "fr").Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
}

func TestFileSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewFileSource(filepath.Join(t.TempDir(), "fr.json"), "fr").
		Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
}

func TestFileSourceInvalidStructureNamesKeyPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "fr.json", `{"core": {"alerts": {"count": 3}}}`)

	_, err := i18n.NewFileSource(path, "fr").Load(context.Background())

	var perr *i18n.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "core.alerts.count", perr.Key)
	assert.Equal(t, path, perr.File)
}

func TestFileSourceEmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "fr.json", "")

	_, err := i18n.NewFileSource(path, "fr").Load(context.Background())

	var perr *i18n.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestDirSourceLoadsPerLocaleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)
	writeFile(t, dir, "es.yaml", "report:\n  overview: Resumen\n")
	writeFile(t, dir, "de.toml", "[report]\noverview = \"Übersicht\"\n")

	catalogs, err := i18n.NewDirSource(dir).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, catalogs, 3)
	for locale, want := range map[string]string{
		"fr": "Aperçu", "es": "Resumen", "de": "Übersicht",
	} {
		report, ok := catalogs[locale]["report"].(map[string]any)
		require.True(t, ok, locale)
		assert.Equal(t, want, report["overview"], locale)
	}
}

func TestDirSourceSkipsUnrecognizedNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)
	writeFile(t, dir, "en_translation_template.json", `{"report": {"overview": "Overview"}}`)
	writeFile(t, dir, "readme.md", "# notes")

	catalogs, err := i18n.NewDirSource(dir).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, catalogs, 1)
	assert.Contains(t, catalogs, "fr")
}

func TestDirSourceSkipsMalformedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "es.json", `{"broken":`)
	writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)

	catalogs, err := i18n.NewDirSource(dir).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, catalogs, 1)
	assert.Contains(t, catalogs, "fr")
}

func TestDirSourceMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewDirSource(filepath.Join(t.TempDir(), "nope")).
		Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToAccessDirectory)
}

func TestDirSourcePathIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "fr.json", `{}`)

	_, err := i18n.NewDirSource(path).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToAccessDirectory)
}

func TestDirSourceCancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := i18n.NewDirSource(dir).Load(ctx)
	assert.ErrorIs(t, err, i18n.ErrLoadingDirectoryCancelled)
}

func TestMapSourceNormalizesLocales(t *testing.T) {
	t.Parallel()

	src := &i18n.MapSource{Data: map[string]i18n.Catalog{
		"FR": {"report": map[string]any{"overview": "Aperçu"}},
	}}

	catalogs, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, catalogs, "fr")
}

func TestLoadFileMergesIntoTranslator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)

	tr := newTranslator(t)
	require.NoError(t, tr.LoadFile(context.Background(), path, "fr"))

	assert.Contains(t, tr.AvailableLocales(), "fr")
	assert.Equal(t, "Aperçu", tr.Tl("fr", "report.overview"))
}

func TestLoadDirectoryMergesIntoTranslator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)
	writeFile(t, dir, "es.json", `{"report": {"overview": "Resumen"}}`)

	tr := newTranslator(t)
	require.NoError(t, tr.LoadDirectory(context.Background(), dir))

	locales := tr.AvailableLocales()
	assert.Contains(t, locales, "es")
	assert.Contains(t, locales, "fr")
	assert.Equal(t, "Resumen", tr.Tl("es", "report.overview"))
}

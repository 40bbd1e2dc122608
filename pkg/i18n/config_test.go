package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profilekit/profilekit/pkg/i18n"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"report": {"overview": "Aperçu"}}`)

	tr, err := i18n.NewFromConfig(context.Background(), i18n.Config{
		DefaultLocale: "fr",
		Directory:     dir,
		FallbackToKey: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "fr", tr.Locale())
	assert.Equal(t, "Aperçu", tr.T("report.overview"))
}

func TestNewFromConfigStrictMode(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewFromConfig(context.Background(), i18n.Config{
		DefaultLocale: "en",
		FallbackToKey: false,
	})
	require.NoError(t, err)

	assert.Empty(t, tr.T("bogus.key"))
}

func TestNewFromConfigMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewFromConfig(context.Background(), i18n.Config{
		DefaultLocale: "en",
		FallbackToKey: true,
		Directory:     "/nonexistent/translations",
	})
	assert.ErrorIs(t, err, i18n.ErrFailedToAccessDirectory)
}

func TestNewFromConfigExtraOptionsWin(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewFromConfig(context.Background(), i18n.Config{
		DefaultLocale: "en",
		FallbackToKey: true,
	}, i18n.WithDefaultLocale("zh"))
	require.NoError(t, err)

	assert.Equal(t, "zh", tr.Locale())
	assert.Equal(t, "概览", tr.T("report.overview"))
}

func TestNewFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "es.yaml", "report:\n  overview: Resumen\n")

	t.Setenv("I18N_DEFAULT_LOCALE", "es")
	t.Setenv("I18N_TRANSLATIONS_DIR", dir)
	t.Setenv("I18N_FALLBACK_TO_KEY", "true")

	tr, err := i18n.NewFromEnv(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "es", tr.Locale())
	assert.Equal(t, "Resumen", tr.T("report.overview"))
	// Keys absent from the es catalog echo, en is not in the chain here.
	assert.Equal(t, "report.variables", tr.T("report.variables"))
	assert.Equal(t, "Variables", tr.Tl("en", "report.variables"))
}

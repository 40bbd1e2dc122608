package i18n

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// ExportTemplate writes the locale's catalog as an indented JSON document,
// the editable starting point for translators. A locale without a catalog
// exports the default locale's catalog instead; only when the default has no
// catalog either does the export fail with *LocaleNotFoundError. The
// registry is not mutated.
//
// The exported document loads back via LoadFile without loss, so exporting
// the default locale and loading the result under a new code reproduces the
// default catalog key for key.
func (t *Translator) ExportTemplate(locale string, w io.Writer) error {
	t.mu.RLock()
	c, ok := t.catalogs[normalizeLocale(locale)]
	if !ok {
		c, ok = t.catalogs[t.defaultLocale]
	}
	if !ok {
		t.mu.RUnlock()
		return &LocaleNotFoundError{Locale: locale}
	}
	c = cloneCatalog(c)
	t.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return errors.Join(ErrFailedToWriteTemplate, err)
	}
	return nil
}

// ExportTemplateToFile writes the template produced by ExportTemplate to the
// given path, creating or truncating the file.
func (t *Translator) ExportTemplateToFile(locale, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Join(ErrFailedToWriteTemplate, err)
	}
	if err := t.ExportTemplate(locale, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportJSON returns the locale's catalog as a compact JSON string, useful
// for handing translations to client-side report widgets. Unlike
// ExportTemplate it is strict: the locale must have a catalog.
func (t *Translator) ExportJSON(locale string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c, ok := t.catalogs[normalizeLocale(locale)]
	if !ok {
		return "", &LocaleNotFoundError{Locale: locale}
	}
	bytes, err := json.Marshal(c)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(bytes), nil
}

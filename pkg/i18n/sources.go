package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Source supplies per-locale catalogs to a Translator. Load returns the
// catalogs keyed by normalized locale code; the translator merges them into
// its registry.
type Source interface {
	Load(ctx context.Context) (map[string]Catalog, error)
}

// MapSource serves catalogs from an in-memory map, keyed by locale code.
// Useful for tests and for embedding applications with generated catalogs.
type MapSource struct {
	Data map[string]Catalog
}

// Load implements the Source interface.
func (s *MapSource) Load(_ context.Context) (map[string]Catalog, error) {
	out := make(map[string]Catalog, len(s.Data))
	for locale, c := range s.Data {
		norm := normalizeLocale(locale)
		if norm == "" {
			return nil, fmt.Errorf("invalid locale code %q in map source", locale)
		}
		out[norm] = cloneCatalog(c)
	}
	return out, nil
}

// FileSource loads a single translation document for an explicitly given
// locale. The parser is chosen from the file extension.
type FileSource struct {
	path   string
	locale string
}

// NewFileSource creates a source for one translation file registered under
// the given locale code.
func NewFileSource(path, locale string) *FileSource {
	return &FileSource{path: path, locale: locale}
}

// Load implements the Source interface.
func (s *FileSource) Load(ctx context.Context) (map[string]Catalog, error) {
	locale := normalizeLocale(s.locale)
	if locale == "" {
		return nil, fmt.Errorf("invalid locale code %q for file %q", s.locale, s.path)
	}

	parser := ParserForFile(s.path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.path)
	}

	catalog, err := loadDocument(ctx, parser, s.path, func() ([]byte, error) {
		return os.ReadFile(s.path)
	})
	if err != nil {
		return nil, err
	}
	return map[string]Catalog{locale: catalog}, nil
}

// DirSource loads every supported document in a directory, inferring each
// file's locale from its base name (fr.json → "fr"). Files whose base name
// is not a locale code are skipped with a warning. Entries are processed in
// lexicographic order so overlapping keys resolve deterministically.
type DirSource struct {
	path   string
	logger *slog.Logger
}

// NewDirSource creates a source over a directory of per-locale documents.
func NewDirSource(path string) *DirSource {
	return &DirSource{path: path}
}

// WithLogger attaches a logger for skip/failure warnings and returns the
// source for chaining.
func (s *DirSource) WithLogger(logger *slog.Logger) *DirSource {
	s.logger = logger
	return s
}

// Load implements the Source interface.
func (s *DirSource) Load(ctx context.Context) (map[string]Catalog, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFailedToAccessDirectory, s.path)
	}

	entries, err := os.ReadDir(s.path) // sorted by file name
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	out := make(map[string]Catalog)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		name := entry.Name()
		parser := ParserForFile(name)
		if parser == nil {
			continue
		}

		locale := localeFromFilename(name)
		if locale == "" {
			s.warn("skipping translation file with unrecognized locale name",
				"file", name, "dir", s.path)
			continue
		}

		path := filepath.Join(s.path, name)
		catalog, err := loadDocument(ctx, parser, path, func() ([]byte, error) {
			return os.ReadFile(path)
		})
		if err != nil {
			if errors.Is(err, ErrLoadingFileCancelled) {
				return nil, err
			}
			s.warn("skipping unreadable translation file", "file", path, "error", err)
			continue
		}

		out[locale] = mergeCatalog(out[locale], catalog)
	}
	return out, nil
}

func (s *DirSource) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

// FSSource loads per-locale documents from any fs.FS, typically an embed.FS
// holding catalogs compiled into the binary. Locale inference and ordering
// match DirSource.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates a source over dir inside fsys.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	return &FSSource{fsys: fsys, dir: dir}
}

// Load implements the Source interface.
func (s *FSSource) Load(ctx context.Context) (map[string]Catalog, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	out := make(map[string]Catalog)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		name := entry.Name()
		parser := ParserForFile(name)
		if parser == nil {
			continue
		}
		locale := localeFromFilename(name)
		if locale == "" {
			continue
		}

		path := s.dir + "/" + name
		catalog, err := loadDocument(ctx, parser, path, func() ([]byte, error) {
			return fs.ReadFile(s.fsys, path)
		})
		if err != nil {
			return nil, err
		}
		out[locale] = mergeCatalog(out[locale], catalog)
	}
	return out, nil
}

// loadDocument reads, parses and validates one translation document. The
// read runs in a goroutine so a cancelled context unblocks the caller even
// on slow filesystems.
func loadDocument(ctx context.Context, parser Parser, path string, read func() ([]byte, error)) (Catalog, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	if len(content) == 0 {
		return nil, &ParseError{File: path, Err: io.ErrUnexpectedEOF}
	}

	catalog, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, &ParseError{File: path, Err: err}
	}
	if err := validateCatalog(catalog, ""); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = path
			return nil, perr
		}
		return nil, err
	}
	return catalog, nil
}

// localeFromFilename derives a locale code from a file base name, returning
// "" when the name does not parse as a locale tag (en_translation_template
// and the like are deliberately skipped).
func localeFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return canonicalLocale(base)
}

package i18n

import (
	"errors"
	"fmt"
)

// Sentinel errors wrap lower-level failures via errors.Join so callers can
// match on the operation that failed without parsing messages.
var (
	// File operations
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access translation directory")
	ErrFailedToReadDirectory     = errors.New("failed to read translation directory")
	ErrLoadingDirectoryCancelled = errors.New("loading translation directory cancelled")

	// Format operations
	ErrFailedToParseJSON   = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML   = errors.New("failed to parse TOML content")
	ErrParsingCancelled    = errors.New("parsing cancelled")
	ErrUnsupportedFormat   = errors.New("unsupported translation file format")
	ErrFailedToMarshalJSON = errors.New("failed to marshal translations to JSON")

	// Export operations
	ErrFailedToWriteTemplate = errors.New("failed to write translation template")
)

// LocaleNotFoundError indicates that an operation requiring an existing
// catalog was given a locale with no catalog and no default to fall back to.
type LocaleNotFoundError struct {
	Locale string
}

func (e *LocaleNotFoundError) Error() string {
	return fmt.Sprintf("no translation catalog for locale: %s", e.Locale)
}

// ParseError reports a structurally invalid translation document. Key is the
// dotted path of the offending node, empty when the document itself could
// not be decoded.
type ParseError struct {
	File string
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Key != "" && e.File != "":
		return fmt.Sprintf("invalid translation document %s: key %q: %v", e.File, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("invalid translation document: key %q: %v", e.Key, e.Err)
	case e.File != "":
		return fmt.Sprintf("invalid translation document %s: %v", e.File, e.Err)
	default:
		return fmt.Sprintf("invalid translation document: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

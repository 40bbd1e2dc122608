package i18n

import (
	"context"
	"strings"
)

// Parser decodes a structured translation document into a Catalog. Each
// document holds the catalog for exactly one locale; the locale itself comes
// from the caller (explicit argument or the file's base name).
type Parser interface {
	// Parse decodes content into a nested key→string catalog. The returned
	// tree is not yet validated; loaders run validateCatalog to produce
	// ParseError values with dotted key paths.
	Parse(ctx context.Context, content []byte) (Catalog, error)

	// SupportsExtension reports whether the parser handles the given file
	// extension, with or without a leading dot.
	SupportsExtension(ext string) bool
}

// ParserForFile returns the parser matching the file's extension, or nil if
// the format is not supported.
func ParserForFile(filename string) Parser {
	switch strings.ToLower(fileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

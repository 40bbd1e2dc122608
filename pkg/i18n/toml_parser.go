package i18n

import (
	"context"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser decodes TOML translation documents.
type TOMLParser struct{}

// NewTOMLParser creates a new TOMLParser instance.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse decodes TOML content into a Catalog.
func (p *TOMLParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data Catalog
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	return data, nil
}

// SupportsExtension reports whether the parser handles the given extension.
func (p *TOMLParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}

package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser decodes JSON translation documents.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content into a Catalog.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data Catalog
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return data, nil
}

// SupportsExtension reports whether the parser handles the given extension.
func (p *JSONParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

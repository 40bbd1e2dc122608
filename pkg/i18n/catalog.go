package i18n

import (
	"errors"
	"sort"
	"strings"
)

// Catalog is the nested key→string translation tree for one locale. Interior
// nodes are Catalog/map[string]any values, leaves are string templates that
// may embed {name} placeholders.
type Catalog = map[string]any

// lookup traverses the catalog along the dot-separated key and returns the
// leaf string. Interior nodes and non-string leaves report a miss.
func lookup(c Catalog, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := c

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := asCatalog(val)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

// asCatalog widens the value types different decoders produce for interior
// nodes. YAML historically yields map[any]any for some inputs.
func asCatalog(v any) (Catalog, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(Catalog, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// mergeCatalog merges src into dst recursively. Subtrees merge key by key
// and leaf values follow last-write-wins, so a partial document only
// overrides the keys it defines. dst is mutated and returned.
func mergeCatalog(dst, src Catalog) Catalog {
	if dst == nil {
		dst = make(Catalog, len(src))
	}
	for k, v := range src {
		srcSub, srcIsMap := asCatalog(v)
		if !srcIsMap {
			dst[k] = v
			continue
		}
		if dstSub, ok := asCatalog(dst[k]); ok {
			dst[k] = mergeCatalog(dstSub, srcSub)
		} else {
			dst[k] = mergeCatalog(make(Catalog, len(srcSub)), srcSub)
		}
	}
	return dst
}

// cloneCatalog deep-copies a catalog so exported or returned trees cannot
// alias the registry's internal state.
func cloneCatalog(c Catalog) Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		if sub, ok := asCatalog(v); ok {
			out[k] = cloneCatalog(sub)
		} else {
			out[k] = v
		}
	}
	return out
}

// validateCatalog checks that every leaf is a string and every interior node
// a string-keyed map, returning the dotted path of the first offending node.
func validateCatalog(c Catalog, prefix string) error {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch v := c[k].(type) {
		case string:
		case map[string]any:
			if err := validateCatalog(v, path); err != nil {
				return err
			}
		case map[any]any:
			sub, ok := asCatalog(v)
			if !ok {
				return &ParseError{Key: path, Err: errors.New("non-string map key")}
			}
			if err := validateCatalog(sub, path); err != nil {
				return err
			}
		default:
			return &ParseError{Key: path, Err: errors.New("leaf value is not a string")}
		}
	}
	return nil
}

// flattenCatalog lists every fully-qualified dotted key in the catalog,
// sorted. Used for template previews and tests.
func flattenCatalog(c Catalog, prefix string) []string {
	var keys []string
	for k, v := range c {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if sub, ok := asCatalog(v); ok {
			keys = append(keys, flattenCatalog(sub, path)...)
		} else {
			keys = append(keys, path)
		}
	}
	sort.Strings(keys)
	return keys
}

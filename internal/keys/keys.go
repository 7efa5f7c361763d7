// Package keys rewrites camelCase API field names into the snake_case names
// used by the record shapes.
package keys

import (
	"regexp"
	"slices"
	"strings"
)

var (
	camelRun   = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Snake converts a single camelCase key to snake_case.
// Keys that are already snake_case are returned unchanged.
func Snake(key string) string {
	key = camelRun.ReplaceAllString(key, "${1}_${2}")
	key = lowerUpper.ReplaceAllString(key, "${1}_${2}")
	return strings.ToLower(key)
}

// Normalize returns a copy of data with every key rewritten by Snake.
// Nested mappings and mappings inside sequences are rewritten too.
// When several keys rewrite to the same name, a key already spelled that way
// wins, then the lexically smallest original key.
func Normalize(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	names := make([]string, 0, len(data))
	for k := range data {
		names = append(names, k)
	}
	slices.Sort(names)

	out := make(map[string]any, len(data))
	for _, k := range names {
		snake := Snake(k)
		if _, taken := out[snake]; taken && k != snake {
			continue
		}
		out[snake] = Value(data[k])
	}
	return out
}

// Value normalizes v if it is a mapping or a sequence; other values are
// returned as-is.
func Value(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return Normalize(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Value(item)
		}
		return out
	default:
		return v
	}
}

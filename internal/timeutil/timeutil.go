// Package timeutil parses the timestamp formats used by the Euroleague API.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// LocalLayout is the zone-less timestamp the v2 API returns.
const LocalLayout = "2006-01-02T15:04:05"

// ErrEmpty is returned when there is no timestamp to parse.
var ErrEmpty = errors.New("timeutil: empty timestamp")

var layouts = []string{time.RFC3339Nano, LocalLayout, "2006-01-02T15:04:05.999999999", DateLayout}

// ParseAPITime accepts RFC3339, zone-less timestamps and bare dates. Values
// without a zone are interpreted in loc (UTC when nil).
func ParseAPITime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmpty
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timeutil: unrecognized timestamp %q", value)
}

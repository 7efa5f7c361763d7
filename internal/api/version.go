package api

import (
	"fmt"
	"strings"
)

// Version selects one of the API base URLs. The zero value means V2.
type Version int

const (
	// V1 is the legacy XML API.
	V1 Version = 1
	// V2 is the JSON REST API.
	V2 Version = 2
)

func (v Version) String() string {
	switch v.resolve() {
	case V1:
		return "1.0"
	case V2:
		return "2.0"
	default:
		return fmt.Sprintf("version(%d)", int(v))
	}
}

func (v Version) resolve() Version {
	if v == 0 {
		return V2
	}
	return v
}

// ParseVersion accepts "1", "1.0", "v1", "2", "2.0" and "v2". An empty string yields V2.
func ParseVersion(raw string) (Version, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "v") {
	case "1", "1.0":
		return V1, nil
	case "", "2", "2.0":
		return V2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, raw)
	}
}

package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownField is returned when the input carries a key the shape does not declare.
	ErrUnknownField = errors.New("unknown field")
	// ErrMissingField is returned when a required field is absent or null.
	ErrMissingField = errors.New("missing required field")
	// ErrTypeMismatch is returned when a value cannot be converted to the declared field type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ConstructionError reports why a record could not be built.
// Path is the dotted field path from the root shape, with list indexes in brackets.
type ConstructionError struct {
	Shape string
	Path  string
	Err   error
}

func (e *ConstructionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("record: build %s: %v", e.Shape, e.Err)
	}
	return fmt.Sprintf("record: build %s: field %s: %v", e.Shape, e.Path, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// AsConstructionError attempts to unwrap an error into a ConstructionError.
func AsConstructionError(err error) (*ConstructionError, bool) {
	var ce *ConstructionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// wrapPath prefixes err's path with prefix, keeping the innermost cause.
func wrapPath(shape, prefix string, err error) error {
	if ce, ok := AsConstructionError(err); ok {
		return &ConstructionError{Shape: shape, Path: joinPath(prefix, ce.Path), Err: ce.Err}
	}
	return &ConstructionError{Shape: shape, Path: prefix, Err: err}
}

func joinPath(prefix, rest string) string {
	switch {
	case rest == "":
		return prefix
	case prefix == "":
		return rest
	case strings.HasPrefix(rest, "["):
		return prefix + rest
	default:
		return prefix + "." + rest
	}
}

func mismatch(want string, got any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, want, got)
}

// Package record builds immutable typed records from decoded API payloads.
//
// Every record type declares a Shape: an ordered table of fields with their
// kinds and an explicit default value. Construction is strict: keys that the
// shape does not declare fail the build, and nested mappings are built into
// nested records at any depth.
package record

import (
	"fmt"
	"sort"
)

// Shape is the construction table for records of type T.
type Shape[T any] struct {
	name     string
	defaults T
	fields   []Field[T]
	index    map[string]int
}

// NewShape declares a shape. Fields keep their declaration order.
// It panics on an empty name or duplicated field names since both are programming errors.
func NewShape[T any](name string, defaults T, fields ...Field[T]) *Shape[T] {
	if name == "" {
		panic("record: shape name must not be empty")
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.assign == nil {
			panic(fmt.Sprintf("record: shape %s: field %q has no assigner", name, f.name))
		}
		if _, dup := index[f.name]; dup {
			panic(fmt.Sprintf("record: shape %s: duplicate field %q", name, f.name))
		}
		index[f.name] = i
	}
	return &Shape[T]{
		name:     name,
		defaults: defaults,
		fields:   fields,
		index:    index,
	}
}

// Name returns the shape name used in errors.
func (s *Shape[T]) Name() string { return s.name }

// Describe lists the declared fields in order.
func (s *Shape[T]) Describe() []FieldInfo {
	out := make([]FieldInfo, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, FieldInfo{Name: f.name, Kind: f.kind, Shape: f.nested, Required: f.required})
	}
	return out
}

// Build constructs a record from data. Absent or null keys keep their default.
func (s *Shape[T]) Build(data map[string]any) (T, error) {
	if err := s.validate(data); err != nil {
		var zero T
		return zero, err
	}

	out := s.defaults
	for _, f := range s.fields {
		v, ok := data[f.name]
		if !ok || v == nil {
			continue
		}
		if err := f.assign(&out, v); err != nil {
			var zero T
			return zero, wrapPath(s.name, f.name, err)
		}
	}
	return out, nil
}

// BuildAny constructs a record from a decoded value that must be a mapping.
func (s *Shape[T]) BuildAny(v any) (T, error) {
	m, ok := v.(map[string]any)
	if !ok {
		var zero T
		return zero, &ConstructionError{Shape: s.name, Err: mismatch("object", v)}
	}
	return s.Build(m)
}

// BuildList constructs one record per element. Any failing element fails the whole list.
func (s *Shape[T]) BuildList(items []any) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		idx := fmt.Sprintf("[%d]", i)
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &ConstructionError{Shape: s.name, Path: idx, Err: mismatch("object", item)}
		}
		rec, err := s.Build(m)
		if err != nil {
			return nil, wrapPath(s.name, idx, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// validate rejects unknown keys and missing required fields before any assignment.
func (s *Shape[T]) validate(data map[string]any) error {
	var unknown []string
	for k := range data {
		if _, ok := s.index[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ConstructionError{Shape: s.name, Path: unknown[0], Err: ErrUnknownField}
	}

	for _, f := range s.fields {
		if !f.required {
			continue
		}
		if v, ok := data[f.name]; !ok || v == nil {
			return &ConstructionError{Shape: s.name, Path: f.name, Err: ErrMissingField}
		}
	}
	return nil
}

package record

import "fmt"

// Kind tells how a field's value is constructed.
type Kind int

const (
	// KindValue fields hold a primitive value converted from the input.
	KindValue Kind = iota
	// KindRecord fields hold a single nested record built from a mapping.
	KindRecord
	// KindList fields hold a sequence of nested records built from a sequence of mappings.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field declares one named field of a record of type T.
type Field[T any] struct {
	name     string
	kind     Kind
	nested   string
	required bool
	assign   func(dst *T, v any) error
}

// Name returns the field's wire name.
func (f Field[T]) Name() string { return f.name }

// Required returns a copy of f that must be present and non-null in the input.
func (f Field[T]) Required() Field[T] {
	f.required = true
	return f
}

// FieldInfo describes a declared field.
type FieldInfo struct {
	Name     string
	Kind     Kind
	Shape    string // nested shape name for KindRecord and KindList
	Required bool
}

// Value declares a primitive field converted with conv.
func Value[T, V any](name string, conv func(any) (V, error), set func(*T, V)) Field[T] {
	return Field[T]{
		name: name,
		kind: KindValue,
		assign: func(dst *T, v any) error {
			converted, err := conv(v)
			if err != nil {
				return err
			}
			set(dst, converted)
			return nil
		},
	}
}

func String[T any](name string, set func(*T, string)) Field[T] {
	return Value(name, toString, set)
}

func Int[T any](name string, set func(*T, int)) Field[T] {
	return Value(name, toInt, set)
}

func Float[T any](name string, set func(*T, float64)) Field[T] {
	return Value(name, toFloat, set)
}

func Bool[T any](name string, set func(*T, bool)) Field[T] {
	return Value(name, toBool, set)
}

// StringMap declares an object field whose values are all strings, such as image URLs.
func StringMap[T any](name string, set func(*T, map[string]string)) Field[T] {
	return Value(name, toStringMap, set)
}

// Raw declares a field that keeps the decoded value untouched.
func Raw[T any](name string, set func(*T, any)) Field[T] {
	return Value(name, func(v any) (any, error) { return v, nil }, set)
}

// One declares a field holding a single nested record of shape sub.
func One[T, S any](name string, sub *Shape[S], set func(*T, *S)) Field[T] {
	return Field[T]{
		name:   name,
		kind:   KindRecord,
		nested: sub.Name(),
		assign: func(dst *T, v any) error {
			m, ok := v.(map[string]any)
			if !ok {
				return mismatch(sub.Name()+" object", v)
			}
			rec, err := sub.Build(m)
			if err != nil {
				return err
			}
			set(dst, &rec)
			return nil
		},
	}
}

// Many declares a field holding a sequence of nested records of shape sub.
func Many[T, S any](name string, sub *Shape[S], set func(*T, []S)) Field[T] {
	return Field[T]{
		name:   name,
		kind:   KindList,
		nested: sub.Name(),
		assign: func(dst *T, v any) error {
			items, ok := v.([]any)
			if !ok {
				return mismatch("list of "+sub.Name(), v)
			}
			recs, err := sub.BuildList(items)
			if err != nil {
				return err
			}
			set(dst, recs)
			return nil
		},
	}
}

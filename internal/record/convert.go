package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// number covers json.Number and jsoniter's number type without importing either.
type number interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

func toString(v any) (string, error) {
	switch typed := v.(type) {
	case string:
		return typed, nil
	case number:
		return typed.String(), nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(typed), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	default:
		return "", mismatch("string", v)
	}
}

func toInt(v any) (int, error) {
	switch typed := v.(type) {
	case int:
		return typed, nil
	case int64:
		if typed < math.MinInt || typed > math.MaxInt {
			return 0, fmt.Errorf("%w: int %d out of range", ErrTypeMismatch, typed)
		}
		return int(typed), nil
	case float64:
		return floatToInt(typed)
	case number:
		if n, err := typed.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
		f, err := typed.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: expected int, got %q", ErrTypeMismatch, typed.String())
		}
		return floatToInt(f)
	case string:
		// XML attributes arrive as strings.
		s := strings.TrimSpace(typed)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: expected int, got %q", ErrTypeMismatch, typed)
		}
		return n, nil
	default:
		return 0, mismatch("int", v)
	}
}

// floatToInt rejects fractional values and values outside the int range.
func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: expected int, got fractional %v", ErrTypeMismatch, f)
	}
	if f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("%w: int %v out of range", ErrTypeMismatch, f)
	}
	return int(f), nil
}

func toFloat(v any) (float64, error) {
	switch typed := v.(type) {
	case float64:
		return typed, nil
	case int:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case number:
		f, err := typed.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: expected float, got %q", ErrTypeMismatch, typed.String())
		}
		return f, nil
	case string:
		s := strings.TrimSpace(typed)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: expected float, got %q", ErrTypeMismatch, typed)
		}
		return f, nil
	default:
		return 0, mismatch("float", v)
	}
}

func toBool(v any) (bool, error) {
	switch typed := v.(type) {
	case bool:
		return typed, nil
	case string:
		s := strings.TrimSpace(typed)
		if s == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("%w: expected bool, got %q", ErrTypeMismatch, typed)
		}
		return b, nil
	default:
		return false, mismatch("bool", v)
	}
}

func toStringMap(v any) (map[string]string, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch("object", v)
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		if item == nil {
			continue
		}
		s, err := toString(item)
		if err != nil {
			return nil, &ConstructionError{Path: k, Err: err}
		}
		out[k] = s
	}
	return out, nil
}

package freq

import (
	"math"
	"reflect"

	"cosmossdk.io/errors"
)

// Normalize converts v to one of the internal value types: int64,
// float64, string or bool. Floats with an integral value become int64
// so that 1 and 1.0 are the same category. Other comparable values are
// returned unchanged. The nil value stays nil.
func Normalize(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	switch x := v.(type) {
	case int64, string, bool:
		return x, nil
	case float64:
		return integral(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return integral(rv.Float()), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
	}
	if !rv.Type().Comparable() {
		return nil, errors.Wrapf(ErrInvalidParameter, "value of type %T cannot be counted", v)
	}
	return v, nil
}

// integral returns f as int64 if it is a whole number in the int64 range.
func integral(f float64) interface{} {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return int64(f)
	}
	return f
}

// Missing reports whether the normalised value v is a missing value.
func Missing(v interface{}) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	return false
}

// toFloat returns the normalised value v as a float64.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// Round2 rounds x to two decimals, ties to even.
func Round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

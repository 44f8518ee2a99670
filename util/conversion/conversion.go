// Package conversion coerces the loosely-typed values that come out of
// JSON-decoded tools/call arguments into the numeric type
// registry.ValidateArguments needs for min/max bound checks.
package conversion

import (
	"fmt"
	"strconv"
)

// ToFloat64 coerces value to float64 for numeric bound comparisons. JSON
// decoding into map[string]interface{} always produces float64 for
// numbers, but a caller constructing arguments programmatically (tests,
// an in-process host) may hand in any Go numeric type or a numeric
// string, so every common case is accepted.
func ToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

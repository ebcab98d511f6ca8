package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt(val any) int {
	return int(ToInt64(val))
}

// ToInt64 converts various types to int64.
// Strings that do not hold an integer convert to 0.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		return i
	case nil:
		return 0
	default:
		i, _ := strconv.ParseInt(fmt.Sprintf("%v", v), 10, 64)
		return i
	}
}

// ToString converts various types to string.
// Nil converts to the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt64(v) == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}

// Compare is a three-way comparison over scalar values. It returns -1, 0 or 1.
//
// Two numbers compare numerically. A number and a numeric string also compare
// numerically. Any other pair compares lexically on the ToString form. A nil
// value sorts before every non-nil value.
func Compare(x, y any) int {
	if x == nil || y == nil {
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		default:
			return 1
		}
	}

	if xi, ok := x.(int64); ok {
		if yi, ok := y.(int64); ok {
			return sign(xi, yi)
		}
	}

	xf, xNum := toFloat(x)
	yf, yNum := toFloat(y)
	if xNum && yNum {
		return sign(xf, yf)
	}
	if xNum != yNum {
		if !xNum {
			xf, xNum = parseFloat(x)
		} else {
			yf, yNum = parseFloat(y)
		}
		if xNum && yNum {
			return sign(xf, yf)
		}
	}

	return strings.Compare(ToString(x), ToString(y))
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

func parseFloat(val any) (float64, bool) {
	str, ok := val.(string)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func sign[T int64 | float64](x, y T) int {
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	default:
		return 0
	}
}

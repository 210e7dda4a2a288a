package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFloat converts various types to float64 using explicit type switching.
// Legacy catalog metadata files carry numbers both as JSON numbers and as
// strings ("0.5"), so both must normalize to the same value. Unconvertible
// input yields zero.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		return f
	default:
		return 0
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStringSlice converts a decoded JSON value to a slice of strings.
// It accepts []any (the shape encoding/json produces for arrays), []string,
// and a single scalar, which becomes a one-element slice. Nil input yields
// an empty slice, never nil, so callers can reset multi-valued fields.
func ToStringSlice(val any) []string {
	switch v := val.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := ToString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := ToString(v); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

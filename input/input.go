package input

import (
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// GetString extracts a string value from the map with a default fallback.
// Returns defaultVal if the key doesn't exist, the value is nil, or not a
// string.
func GetString(m map[string]any, key string, defaultVal string) string {
	val, ok := lookup(m, key)
	if !ok {
		return defaultVal
	}
	str, ok := val.(string)
	if !ok {
		return defaultVal
	}
	return str
}

// GetNumber extracts a float64 value from the map with type coercion and a
// default fallback. Handles every integer and float type, json.Number, and
// numeric strings.
func GetNumber(m map[string]any, key string, defaultVal float64) float64 {
	val, ok := lookup(m, key)
	if !ok {
		return defaultVal
	}

	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return defaultVal
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// GetInt extracts an int value from the map with type coercion and a
// default fallback. Fractional values truncate toward zero.
func GetInt(m map[string]any, key string, defaultVal int) int {
	val, ok := lookup(m, key)
	if !ok {
		return defaultVal
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return defaultVal
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		return defaultVal
	default:
		return int(GetNumber(m, key, float64(defaultVal)))
	}
}

// GetBool extracts a bool value from the map with a default fallback.
func GetBool(m map[string]any, key string, defaultVal bool) bool {
	val, ok := lookup(m, key)
	if !ok {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// GetSlice extracts a []any value from the map. Returns nil if the key
// doesn't exist, the value is nil, or not a slice.
func GetSlice(m map[string]any, key string) []any {
	val, ok := lookup(m, key)
	if !ok {
		return nil
	}
	slice, ok := val.([]any)
	if !ok {
		return nil
	}
	return slice
}

// GetStringSlice extracts a []string value from the map. Handles []string,
// []any with elements rendered as strings, and a bare string wrapped in a
// one-element slice. Returns nil when nothing usable is present.
func GetStringSlice(m map[string]any, key string) []string {
	val, ok := lookup(m, key)
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				result = append(result, s)
			} else {
				result = append(result, fmt.Sprintf("%v", item))
			}
		}
		return result
	case string:
		return []string{v}
	default:
		return nil
	}
}

// GetMap extracts a nested map[string]any from the map. Returns nil if the
// key doesn't exist, the value is nil, or not a map.
func GetMap(m map[string]any, key string) map[string]any {
	val, ok := lookup(m, key)
	if !ok {
		return nil
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	return nested
}

// GetTime extracts a time.Time from the map with a default fallback.
// Handles time.Time values and RFC 3339 strings.
func GetTime(m map[string]any, key string, defaultVal time.Time) time.Time {
	val, ok := lookup(m, key)
	if !ok {
		return defaultVal
	}

	switch v := val.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		return defaultVal
	default:
		return defaultVal
	}
}

func lookup(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	val, ok := m[key]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

package input

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		defVal   string
		expected string
	}{
		{
			name:     "existing string value",
			m:        map[string]any{"key": "value"},
			key:      "key",
			defVal:   "default",
			expected: "value",
		},
		{
			name:     "missing key returns default",
			m:        map[string]any{"other": "value"},
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "nil value returns default",
			m:        map[string]any{"key": nil},
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "wrong type returns default",
			m:        map[string]any{"key": 123},
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "nil map returns default",
			m:        nil,
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetString(tt.m, tt.key, tt.defVal))
		})
	}
}

func TestGetNumber(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		expected float64
	}{
		{"float64", map[string]any{"key": 3.5}, 3.5},
		{"float32", map[string]any{"key": float32(2)}, 2},
		{"int", map[string]any{"key": 7}, 7},
		{"int64", map[string]any{"key": int64(-4)}, -4},
		{"uint32", map[string]any{"key": uint32(9)}, 9},
		{"json number", map[string]any{"key": json.Number("6.25")}, 6.25},
		{"numeric string", map[string]any{"key": "1.5"}, 1.5},
		{"non-numeric string", map[string]any{"key": "abc"}, -1},
		{"wrong type", map[string]any{"key": true}, -1},
		{"missing", map[string]any{}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetNumber(tt.m, "key", -1))
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		expected int
	}{
		{"int", map[string]any{"key": 42}, 42},
		{"int64", map[string]any{"key": int64(10)}, 10},
		{"float64 truncates", map[string]any{"key": 3.9}, 3},
		{"float32 truncates", map[string]any{"key": float32(2.5)}, 2},
		{"json number", map[string]any{"key": json.Number("8")}, 8},
		{"json number fraction", map[string]any{"key": json.Number("8.75")}, 8},
		{"numeric string", map[string]any{"key": "12"}, 12},
		{"bad string", map[string]any{"key": "12x"}, -1},
		{"wrong type", map[string]any{"key": []any{}}, -1},
		{"missing", map[string]any{}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetInt(tt.m, "key", -1))
		})
	}
}

func TestGetBool(t *testing.T) {
	assert.True(t, GetBool(map[string]any{"key": true}, "key", false))
	assert.False(t, GetBool(map[string]any{"key": "true"}, "key", false))
	assert.True(t, GetBool(nil, "key", true))
}

func TestGetSlice(t *testing.T) {
	items := []any{"a", 1.0, true}
	assert.Equal(t, items, GetSlice(map[string]any{"key": items}, "key"))
	assert.Nil(t, GetSlice(map[string]any{"key": "not a slice"}, "key"))
	assert.Nil(t, GetSlice(nil, "key"))
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		expected []string
	}{
		{
			name:     "string slice",
			m:        map[string]any{"key": []string{"a", "b"}},
			expected: []string{"a", "b"},
		},
		{
			name:     "any slice with mixed elements",
			m:        map[string]any{"key": []any{"a", 1.0, nil, true}},
			expected: []string{"a", "1", "true"},
		},
		{
			name:     "bare string wraps",
			m:        map[string]any{"key": "solo"},
			expected: []string{"solo"},
		},
		{
			name:     "wrong type",
			m:        map[string]any{"key": 42},
			expected: nil,
		},
		{
			name:     "missing",
			m:        map[string]any{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetStringSlice(tt.m, "key"))
		})
	}
}

func TestGetMap(t *testing.T) {
	nested := map[string]any{"debug": true}
	assert.Equal(t, nested, GetMap(map[string]any{"key": nested}, "key"))
	assert.Nil(t, GetMap(map[string]any{"key": []any{}}, "key"))
	assert.Nil(t, GetMap(nil, "key"))
}

func TestGetTime(t *testing.T) {
	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, want, GetTime(map[string]any{"key": want}, "key", def))
	assert.Equal(t, want, GetTime(map[string]any{"key": "2024-06-15T10:30:00Z"}, "key", def))
	assert.Equal(t, def, GetTime(map[string]any{"key": "June 15th"}, "key", def))
	assert.Equal(t, def, GetTime(map[string]any{"key": 1718447400}, "key", def))
	assert.Equal(t, def, GetTime(nil, "key", def))
}

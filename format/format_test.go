package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/typekit/compat"
	"github.com/zero-day-ai/typekit/registry"
	"github.com/zero-day-ai/typekit/schema"
	"github.com/zero-day-ai/typekit/validate"
)

func TestFormats(t *testing.T) {
	tests := []struct {
		name   string
		schema schema.Custom
		accept []string
		reject []string
	}{
		{
			name:   "uuid",
			schema: UUID(),
			accept: []string{
				"123e4567-e89b-12d3-a456-426614174000",
				"00000000-0000-0000-0000-000000000000",
			},
			reject: []string{"not-a-uuid", "123e4567e89b12d3a45642661417400", ""},
		},
		{
			name:   "email",
			schema: Email(),
			accept: []string{"ada@example.com", "a+tag@sub.example.org"},
			reject: []string{"ada", "@example.com", "Ada <ada@example.com>", ""},
		},
		{
			name:   "url",
			schema: URL(),
			accept: []string{"https://example.com/path?q=1", "http://localhost:8080"},
			reject: []string{"example.com", "/relative/path", "https://", ""},
		},
		{
			name:   "timestamp",
			schema: Timestamp(),
			accept: []string{"2024-06-01T12:00:00Z", "2024-06-01T12:00:00+02:00"},
			reject: []string{"2024-06-01", "12:00:00", "yesterday", ""},
		},
		{
			name:   "hostname",
			schema: Hostname(),
			accept: []string{"example.com", "a.b-c.d", "localhost"},
			reject: []string{"-bad.example.com", "bad-.example.com", "ex ample.com", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.schema.TypeName)

			for _, s := range tt.accept {
				assert.True(t, validate.Value(tt.schema, s).Valid, "should accept %q", s)
			}
			for _, s := range tt.reject {
				got := validate.Value(tt.schema, s)
				require.False(t, got.Valid, "should reject %q", s)
				assert.Equal(t,
					[]string{"Custom validation failed for type: " + tt.name},
					got.Errors, "for %q", s)
			}
		})
	}
}

func TestFormatsRejectNonStrings(t *testing.T) {
	got := validate.Value(UUID(), 42)
	require.False(t, got.Valid)
	assert.Equal(t, []string{
		"Custom validation failed for type: uuid",
		"Expected string, got number",
	}, got.Errors)
}

func TestDefinitions(t *testing.T) {
	r := registry.New()
	for _, def := range Definitions() {
		require.NoError(t, r.Register(def))
	}

	assert.Equal(t, 8, r.Len())
	for _, name := range []string{"uuid", "email", "url", "timestamp", "hostname"} {
		def, ok := r.Get(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, def.Description)
	}
}

func TestFormatCompatibilityIsNameKeyed(t *testing.T) {
	// A custom type declared elsewhere under the same name is compatible
	// with the shipped one even though the predicates differ.
	foreign := schema.CustomType("uuid")
	assert.True(t, compat.Compatible(foreign, UUID()))
	assert.True(t, compat.Compatible(UUID(), foreign))
	assert.False(t, compat.Compatible(UUID(), Email()))
}

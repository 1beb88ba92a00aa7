package expr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/typekit/schema"
	"github.com/zero-day-ai/typekit/validate"
)

func TestCompileAndAccept(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value any
		want  bool
	}{
		{"int comparison", "value > 0.0", 5, true},
		{"int comparison rejects", "value > 0.0", -1, false},
		{"float comparison", "value > 0.0", 1.5, true},
		{"port range accepts", "value >= 1.0 && value <= 65535.0", 8080, true},
		{"port range rejects", "value >= 1.0 && value <= 65535.0", 70000, false},
		{"string size", "value.size() >= 3", "abcd", true},
		{"string size rejects", "value.size() >= 3", "ab", false},
		{"starts with", `value.startsWith("gh-")`, "gh-1234", true},
		{"regex match", `value.matches("^[a-z]+$")`, "hello", true},
		{"regex rejects", `value.matches("^[a-z]+$")`, "Hello1", false},
		{"wrong value type errors out", "value.size() >= 3", 42, false},
		{"boolean identity", "value", true, true},
		{"non-bool result rejects", "value", "not a bool", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Accept(tt.value))
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"syntax error", "value >"},
		{"unknown variable", "other > 0"},
		{"provably non-boolean", "1 + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestMustCompile(t *testing.T) {
	assert.NotNil(t, MustCompile("value > 0.0"))
	assert.Panics(t, func() { MustCompile("value >") })
}

func TestSource(t *testing.T) {
	const src = `value.size() > 0`
	p := MustCompile(src)
	assert.Equal(t, src, p.Source())

	// The source makes the predicate survive the schema document form.
	var _ schema.SourcePredicate = p
}

func TestAcceptContext(t *testing.T) {
	p := MustCompile("value > 0.0")

	assert.True(t, p.AcceptContext(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, p.AcceptContext(ctx, 1), "canceled context should reject")
}

func TestPredicateInValidation(t *testing.T) {
	s := schema.CustomType("username").
		WithInner(schema.String()).
		WithValidator(MustCompile(`value.matches("^[a-z][a-z0-9]{2,15}$")`))

	assert.True(t, validate.Value(s, "ada42").Valid)

	got := validate.Value(s, "Nope!")
	require.False(t, got.Valid)
	assert.Equal(t, []string{"Custom validation failed for type: username"}, got.Errors)

	// A non-string trips both the predicate and the inner schema.
	got = validate.Value(s, 7)
	require.False(t, got.Valid)
	assert.Equal(t, []string{
		"Custom validation failed for type: username",
		"Expected string, got number",
	}, got.Errors)
}

func TestCompilerRoundTrip(t *testing.T) {
	original := schema.CustomType("port").
		WithInner(schema.Number()).
		WithValidator(MustCompile("value >= 1.0 && value <= 65535.0"))

	data, err := schema.Marshal(original)
	require.NoError(t, err)

	decoded, err := schema.Unmarshal(data, schema.WithPredicateCompiler(Compiler()))
	require.NoError(t, err)

	c, ok := decoded.(schema.Custom)
	require.True(t, ok)
	require.NotNil(t, c.Validator)
	assert.True(t, c.Validator.Accept(8080))
	assert.False(t, c.Validator.Accept(0))
}

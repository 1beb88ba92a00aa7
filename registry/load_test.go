package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/typekit/schema"
	"github.com/zero-day-ai/typekit/validate"
)

func writeDefs(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeDefs(t, "types.yaml", `
types:
  - name: port
    description: TCP port number
    schema:
      typeName: port
      expr: "value >= 1.0 && value <= 65535.0"
      inner:
        type: number
  - name: point
    schema:
      kind: object
      properties:
        x: {type: number}
        y: {type: number}
      required: [x, y]
  - name: pair
    schema:
      items:
        - {type: string}
        - {type: number}
`)

	r := New()
	require.NoError(t, r.LoadFile(path))
	assert.Equal(t, 6, r.Len())

	port, ok := r.Get("port")
	require.True(t, ok)
	assert.Equal(t, "TCP port number", port.Description)

	// The expr field arrived as a live predicate.
	assert.True(t, validate.Value(port.Schema, 8080).Valid)
	got := validate.Value(port.Schema, 0)
	require.False(t, got.Valid)
	assert.Equal(t, []string{"Custom validation failed for type: port"}, got.Errors)

	point, ok := r.Schema("point")
	require.True(t, ok)
	assert.True(t, validate.Value(point, map[string]any{"x": 1, "y": 2}).Valid)
	assert.False(t, validate.Value(point, map[string]any{"x": 1}).Valid)

	pair, ok := r.Schema("pair")
	require.True(t, ok)
	assert.True(t, validate.Value(pair, []any{"a", 1}).Valid)
	assert.False(t, validate.Value(pair, []any{"a"}).Valid)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeDefs(t, "types.json", `{
  "types": [
    {
      "name": "tags",
      "schema": {"kind": "array", "items": [{"type": "string"}], "minItems": 1}
    }
  ]
}`)

	r := New()
	require.NoError(t, r.LoadFile(path))

	tags, ok := r.Schema("tags")
	require.True(t, ok)
	assert.True(t, validate.Value(tags, []any{"go"}).Valid)
	assert.False(t, validate.Value(tags, []any{}).Valid)
}

func TestLoadFileErrors(t *testing.T) {
	r := New()

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, r.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeDefs(t, "types.toml", "types = []")
		assert.ErrorContains(t, r.LoadFile(path), "unsupported definition file extension")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeDefs(t, "bad.yaml", "types: [::")
		assert.ErrorContains(t, r.LoadFile(path), "failed to parse")
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeDefs(t, "noname.yaml", `
types:
  - schema: {type: string}
`)
		assert.ErrorContains(t, r.LoadFile(path), "missing name")
	})

	t.Run("missing schema", func(t *testing.T) {
		path := writeDefs(t, "noschema.yaml", `
types:
  - name: hollow
`)
		assert.ErrorContains(t, r.LoadFile(path), "missing schema")
	})

	t.Run("bad expression", func(t *testing.T) {
		path := writeDefs(t, "badexpr.yaml", `
types:
  - name: broken
    schema:
      typeName: broken
      expr: "value >"
`)
		assert.ErrorContains(t, r.LoadFile(path), "compile expression")
	})

	t.Run("duplicate of builtin", func(t *testing.T) {
		path := writeDefs(t, "dup.yaml", `
types:
  - name: string
    schema: {type: string}
`)
		assert.ErrorIs(t, r.LoadFile(path), ErrDuplicateType)
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	write("a.yaml", `
types:
  - name: alpha
    schema: {type: string}
`)
	write("b.json", `{"types": [{"name": "beta", "schema": {"type": "number"}}]}`)
	write("notes.txt", "not a definition file")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	r := New()
	require.NoError(t, r.LoadDir(dir))

	assert.Equal(t, 5, r.Len())
	alpha, ok := r.Schema("alpha")
	require.True(t, ok)
	assert.Equal(t, schema.String(), alpha)

	assert.Error(t, r.LoadDir(filepath.Join(dir, "missing")))
}

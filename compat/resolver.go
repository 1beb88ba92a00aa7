package compat

import "github.com/zero-day-ai/typekit/schema"

// Resolver looks up a schema by type name. The registry package satisfies
// it; any name-to-schema lookup will do.
type Resolver interface {
	// Schema returns the schema registered under name, reporting whether
	// the name is known.
	Schema(name string) (schema.Schema, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (schema.Schema, bool)

// Schema calls f(name).
func (f ResolverFunc) Schema(name string) (schema.Schema, bool) { return f(name) }

// CheckTypes checks compatibility between two named types resolved through
// r. Identical names are compatible without consulting the resolver. An
// unknown name or a structural mismatch produces a name-level reason; for
// the structural detail behind a mismatch, resolve the names and call Check
// directly.
func CheckTypes(r Resolver, source, target string) Result {
	if source == target {
		return compatible()
	}
	if r == nil {
		panic("compat: nil resolver")
	}

	srcSchema, ok := r.Schema(source)
	if !ok {
		return incompatible("Unknown source type: %s", source)
	}
	tgtSchema, ok := r.Schema(target)
	if !ok {
		return incompatible("Unknown target type: %s", target)
	}

	if !Compatible(srcSchema, tgtSchema) {
		return incompatible("Type mismatch: %s is not compatible with %s", source, target)
	}
	return compatible()
}

// CompatibleTypes reports whether the type named source is compatible with
// the type named target, resolved through r.
func CompatibleTypes(r Resolver, source, target string) bool {
	return CheckTypes(r, source, target).Compatible
}

// Package schema provides the runtime type descriptions used throughout the
// typekit library.
//
// A Schema is an immutable structural description of acceptable values. The
// package implements a closed set of four schema variants, discriminated by
// Kind, that compose recursively:
//
//   - Primitive: a string, number, or boolean value
//   - Array: a homogeneous array, a fixed-length tuple, or the empty tuple
//   - Object: a property map with required names and an unknown-key policy
//   - Custom: a named type combining an optional predicate and an optional
//     wrapped schema
//
// Schemas are plain values with no identity. They are safe to share, copy,
// and embed in other schemas; nothing in typekit mutates a schema after it
// has been constructed.
//
// # Building Schemas
//
// Builder functions construct each variant:
//
//	// A string value
//	name := schema.String()
//
//	// An array of numbers (one item schema applies to every element)
//	scores := schema.ArrayOf(schema.Number())
//
//	// A pair of [string, number] (two or more item schemas form a tuple)
//	entry := schema.ArrayOf(schema.String(), schema.Number())
//
//	// An object with two declared properties, one required
//	user := schema.ObjectOf(map[string]schema.Schema{
//		"name": schema.String(),
//		"age":  schema.Number(),
//	}, "name")
//
// Modifier methods return copies, leaving the receiver untouched:
//
//	tags := schema.ArrayOf(schema.String()).WithMinItems(1).WithMaxItems(10)
//	open := schema.ObjectOf(props).WithAdditionalProperties(true)
//
// # Custom Types
//
// A Custom schema names a type and optionally attaches a predicate, an inner
// schema, or both. A value conforms when the predicate accepts it and the
// inner schema validates it; the two checks are independent.
//
//	email := schema.CustomType("email").
//		WithInner(schema.String()).
//		WithValidatorFunc(func(v any) bool {
//			s, ok := v.(string)
//			return ok && strings.Contains(s, "@")
//		})
//
// The expr package compiles CEL expressions into predicates, and the format
// package ships ready-made custom types for common string formats.
//
// # Array Semantics
//
// The length of an Array schema's Items list selects its behavior:
//
//   - exactly one item schema: a homogeneous array; every element must
//     conform to Items[0]
//   - two or more item schemas: a fixed-length tuple; element i must conform
//     to Items[i] and the value's length must equal len(Items)
//   - zero item schemas: the empty tuple; only an empty array conforms
//
// A nil Items list means the schema declares no item shape at all. The
// builders always set a non-nil list (ArrayOf with no arguments builds the
// empty tuple); nil Items only arises from hand-built Array literals and is
// treated as distinct from the empty tuple by compatibility checking.
//
// # Document Form
//
// Doc is the JSON/YAML document form of a schema, used to ship schemas in
// definition files and across process boundaries. Marshal and Unmarshal
// convert between the two; Go predicates do not survive the round trip
// unless they carry a source expression (see the expr package).
//
// Validation of values lives in the validate package and compatibility
// checking in the compat package; this package is purely descriptive.
package schema

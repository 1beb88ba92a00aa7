// Package typekit is a runtime schema description, validation, and type
// compatibility library.
//
// Schemas describe the shape of data as a composition of four variants:
// primitives (string, number, boolean), arrays (homogeneous, fixed-length
// tuples, or the empty tuple), objects (named properties, required names,
// an unknown-key policy), and custom types (a name plus an optional
// predicate and wrapped schema). Values are checked against schemas at
// runtime, producing every mismatch with a breadcrumb path; pairs of
// schemas are checked for directional structural compatibility.
//
// The library is layered. The subpackages are independent pieces:
//
//   - schema: the schema model, builders, and document form
//   - validate: recursive value validation
//   - compat: structural compatibility checking
//   - registry: named type definitions with unique-name enforcement
//   - expr: CEL expression predicates for custom types
//   - format: ready-made custom types for common string formats
//   - inspect: human-readable rendering of registry contents
//
// This package ties them together behind TypeSystem, a facade bundling a
// registry with name-keyed validation and compatibility checking:
//
//	ts, err := typekit.New(
//		typekit.WithFormats(),
//		typekit.WithDefinitionFile("types.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := ts.ValidateAs("email", "ada@example.com"); err != nil {
//		// err wraps ErrInvalidValue with the mismatch detail
//	}
//
//	report := ts.CheckCompatibility("email", "string")
//	if !report.Compatible {
//		fmt.Println(report.Reason)
//	}
//
// Callers that need only one piece can use the subpackages directly; the
// facade adds nothing they cannot do themselves.
package typekit

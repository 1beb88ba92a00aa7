// Package enum builds string enumeration types.
//
// An enumeration is a custom type whose values must belong to a fixed set
// of strings. Sets act as schema predicates and render themselves as CEL
// membership expressions, so enumeration types survive the schema document
// form like any expression-backed type.
//
// # Usage
//
// Build a set and use it as a validator:
//
//	status := schema.CustomType("status").
//	    WithInner(schema.String()).
//	    WithValidator(enum.Of("open", "closed", "merged"))
//
// Or register a named enumeration directly:
//
//	err := reg.Register(enum.Definition("status", "Ticket state",
//	    "open", "closed", "merged"))
//
// # Case Folding
//
// Of matches exactly. Fold matches case-insensitively, so "Open", "OPEN"
// and "open" all belong to Fold("open"). Folded sets store and report
// their members in lowercase.
package enum

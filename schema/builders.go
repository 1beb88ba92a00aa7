package schema

// String creates a schema for a string value.
func String() Primitive {
	return Primitive{Type: TypeString}
}

// Number creates a schema for a number value. Numbers are a single type:
// integers and floats both conform, NaN does not.
func Number() Primitive {
	return Primitive{Type: TypeNumber}
}

// Boolean creates a schema for a boolean value.
func Boolean() Primitive {
	return Primitive{Type: TypeBoolean}
}

// ArrayOf creates an array schema from the given item schemas. One item
// schema builds a homogeneous array, two or more build a fixed-length
// tuple, and none build the empty tuple.
func ArrayOf(items ...Schema) Array {
	if items == nil {
		items = []Schema{}
	}
	return Array{Items: items}
}

// ObjectOf creates an object schema with the given properties and required
// property names. Unknown keys are rejected unless enabled with
// WithAdditionalProperties.
func ObjectOf(properties map[string]Schema, required ...string) Object {
	return Object{
		Properties: properties,
		Required:   required,
	}
}

// CustomType creates a custom type schema with the given name and no
// predicate or inner schema. Attach them with WithValidator and WithInner.
func CustomType(name string) Custom {
	return Custom{TypeName: name}
}

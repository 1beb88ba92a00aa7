package schema

// Kind discriminates the four schema variants.
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindArray     Kind = "array"
	KindObject    Kind = "object"
	KindCustom    Kind = "custom"
)

// PrimitiveType names the value type a Primitive schema accepts.
type PrimitiveType string

const (
	TypeString  PrimitiveType = "string"
	TypeNumber  PrimitiveType = "number"
	TypeBoolean PrimitiveType = "boolean"
)

// Schema is a structural description of acceptable values. The set of
// implementations is closed: Primitive, Array, Object, and Custom are the
// only variants, and every Schema value is exactly one of them.
//
// Schemas are immutable by convention. Modifier methods return copies, and
// no typekit package mutates a schema it receives.
type Schema interface {
	// Kind reports which variant this schema is.
	Kind() Kind

	// sealed prevents implementations outside this package.
	sealed()
}

// Primitive describes a single string, number, or boolean value.
type Primitive struct {
	// Type selects which primitive values conform.
	Type PrimitiveType
}

// Kind returns KindPrimitive.
func (Primitive) Kind() Kind { return KindPrimitive }

func (Primitive) sealed() {}

// Array describes an array value. The length of Items selects the behavior:
// one schema describes a homogeneous array, two or more describe a
// fixed-length tuple, and an empty non-nil list describes the empty tuple.
// A nil Items list declares no item shape at all.
type Array struct {
	// Items holds the element schema(s). See the package documentation for
	// how its length is interpreted.
	Items []Schema

	// MinItems, when set, is the smallest accepted array length.
	MinItems *int

	// MaxItems, when set, is the largest accepted array length.
	MaxItems *int
}

// Kind returns KindArray.
func (Array) Kind() Kind { return KindArray }

func (Array) sealed() {}

// WithMinItems returns a copy with the minimum length constraint set.
func (a Array) WithMinItems(n int) Array {
	a.MinItems = &n
	return a
}

// WithMaxItems returns a copy with the maximum length constraint set.
func (a Array) WithMaxItems(n int) Array {
	a.MaxItems = &n
	return a
}

// Object describes an object value as a map of named property schemas.
type Object struct {
	// Properties maps property names to their schemas.
	Properties map[string]Schema

	// Required lists property names that must be present. A name listed
	// here but absent from Properties is still enforced for presence; its
	// value is not further checked.
	Required []string

	// AdditionalProperties reports whether keys outside Properties are
	// permitted. The zero value rejects unknown keys.
	AdditionalProperties bool
}

// Kind returns KindObject.
func (Object) Kind() Kind { return KindObject }

func (Object) sealed() {}

// WithAdditionalProperties returns a copy with the unknown-key policy set.
func (o Object) WithAdditionalProperties(allow bool) Object {
	o.AdditionalProperties = allow
	return o
}

// WithRequired returns a copy with the required name list replaced.
func (o Object) WithRequired(names ...string) Object {
	o.Required = names
	return o
}

// Custom describes a named type. The name is the identity used by
// compatibility checking; the predicate and inner schema, when present,
// both constrain which values conform.
type Custom struct {
	// TypeName identifies the custom type. Two Custom schemas are
	// compatible exactly when their names match.
	TypeName string

	// Validator, when non-nil, must accept a value for it to conform.
	Validator Predicate

	// Inner, when non-nil, is a schema the value must also satisfy.
	Inner Schema
}

// Kind returns KindCustom.
func (Custom) Kind() Kind { return KindCustom }

func (Custom) sealed() {}

// WithValidator returns a copy with the predicate set.
func (c Custom) WithValidator(p Predicate) Custom {
	c.Validator = p
	return c
}

// WithValidatorFunc returns a copy with the predicate set from a plain
// function.
func (c Custom) WithValidatorFunc(f func(v any) bool) Custom {
	c.Validator = PredicateFunc(f)
	return c
}

// WithInner returns a copy with the wrapped schema set.
func (c Custom) WithInner(s Schema) Custom {
	c.Inner = s
	return c
}

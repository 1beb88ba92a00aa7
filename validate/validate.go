// Package validate checks in-memory values against schemas.
//
// Validation walks the schema and the value together, accumulating every
// mismatch instead of stopping at the first one. Mismatches are reported as
// messages in the Result, never as errors or panics; a panic occurs only
// when the schema itself is malformed (a nil schema inside a tree), which
// is a programming error rather than a data problem.
//
// Values are expected in deserialized form: Go primitives, slices, and
// string-keyed maps. Structs and typed maps are accepted for object schemas
// by converting them through their JSON form.
package validate

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/zero-day-ai/typekit/schema"
)

// Value validates v against s, reporting every mismatch found. The result
// is deterministic: the same schema and value always produce the same
// messages in the same order.
func Value(s schema.Schema, v any) Result {
	return ValueContext(context.Background(), s, v)
}

// ValueContext is Value with a context handed to context-aware custom
// predicates (see schema.ContextPredicate). The traversal itself is
// strictly sequential and never aborts early; a canceled context only
// makes context-aware predicates reject.
func ValueContext(ctx context.Context, s schema.Schema, v any) Result {
	return resultOf(walk(ctx, s, v))
}

func walk(ctx context.Context, s schema.Schema, v any) []string {
	if s == nil {
		panic("validate: nil schema")
	}

	switch s := s.(type) {
	case schema.Primitive:
		return validatePrimitive(s, v)
	case schema.Array:
		return validateArray(ctx, s, v)
	case schema.Object:
		return validateObject(ctx, s, v)
	case schema.Custom:
		return validateCustom(ctx, s, v)
	default:
		panic(fmt.Sprintf("validate: unknown schema variant %T", s))
	}
}

func validatePrimitive(s schema.Primitive, v any) []string {
	actual := typeName(v)
	if s.Type == schema.TypeNumber && actual == "number" && isNaN(v) {
		return []string{"Number value cannot be NaN"}
	}
	if actual != string(s.Type) {
		return []string{fmt.Sprintf("Expected %s, got %s", s.Type, actual)}
	}
	return nil
}

func validateArray(ctx context.Context, s schema.Array, v any) []string {
	rv, ok := sequenceValue(v)
	if !ok {
		return []string{"Expected array"}
	}

	n := rv.Len()
	var errs []string

	// Length bounds are independent of the per-item checks below.
	if s.MinItems != nil && n < *s.MinItems {
		errs = append(errs, fmt.Sprintf("Array length %d is less than minItems %d", n, *s.MinItems))
	}
	if s.MaxItems != nil && n > *s.MaxItems {
		errs = append(errs, fmt.Sprintf("Array length %d is greater than maxItems %d", n, *s.MaxItems))
	}

	switch {
	case s.Items == nil:
		// No item shape declared; only array-ness and bounds apply.

	case len(s.Items) == 1:
		for i := 0; i < n; i++ {
			for _, e := range walk(ctx, s.Items[0], rv.Index(i).Interface()) {
				errs = append(errs, fmt.Sprintf("Item[%d]: %s", i, e))
			}
		}

	case len(s.Items) == 0:
		if n > 0 {
			errs = append(errs, fmt.Sprintf("Expected empty tuple, got %d items", n))
		}

	default:
		// Fixed-length tuple: the length error does not suppress the
		// per-position checks on the overlapping prefix.
		k := len(s.Items)
		if n != k {
			errs = append(errs, fmt.Sprintf("Tuple length mismatch: expected %d items, got %d", k, n))
		}
		m := k
		if n < m {
			m = n
		}
		for i := 0; i < m; i++ {
			for _, e := range walk(ctx, s.Items[i], rv.Index(i).Interface()) {
				errs = append(errs, fmt.Sprintf("Item at index %d: %s", i, e))
			}
		}
	}

	return errs
}

func validateObject(ctx context.Context, s schema.Object, v any) []string {
	obj, ok := objectValue(v)
	if !ok {
		return []string{"Expected object"}
	}

	var errs []string

	for _, name := range s.Required {
		if _, present := obj[name]; !present {
			errs = append(errs, fmt.Sprintf("Missing required property: '%s'", name))
		}
	}

	// Declared properties, in sorted order so results are deterministic.
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		val, present := obj[name]
		if !present {
			continue
		}
		for _, e := range walk(ctx, s.Properties[name], val) {
			errs = append(errs, fmt.Sprintf("Property '%s': %s", name, e))
		}
	}

	if !s.AdditionalProperties {
		var extras []string
		for key := range obj {
			if _, declared := s.Properties[key]; !declared {
				extras = append(extras, key)
			}
		}
		sort.Strings(extras)
		for _, key := range extras {
			errs = append(errs, fmt.Sprintf("Unexpected property: '%s'", key))
		}
	}

	return errs
}

func validateCustom(ctx context.Context, s schema.Custom, v any) []string {
	var errs []string

	// The predicate and the inner schema are independent checks; both run
	// and both contribute errors.
	if s.Validator != nil && !schema.AcceptContext(ctx, s.Validator, v) {
		errs = append(errs, fmt.Sprintf("Custom validation failed for type: %s", s.TypeName))
	}
	if s.Inner != nil {
		errs = append(errs, walk(ctx, s.Inner, v)...)
	}

	return errs
}

// sequenceValue coerces v into a slice or array value. Pointers are
// followed to their element, matching typeName; anything else, including
// nil, does not qualify.
func sequenceValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return reflect.Value{}, false
	}
	return rv, true
}

// objectValue coerces v into a string-keyed map. Maps and structs qualify,
// converted through their JSON form when needed; anything else, including
// nil, does not.
func objectValue(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map && rv.Kind() != reflect.Struct {
		return nil, false
	}

	data, err := json.Marshal(rv.Interface())
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, true
}

// typeName reports the JSON-vocabulary type of v: null, string, number,
// boolean, array, or object. Values outside that vocabulary report their
// Go type, which can never match a schema.
func typeName(v any) string {
	if v == nil {
		return "null"
	}

	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		if rv.IsNil() {
			return "null"
		}
		return typeName(rv.Elem().Interface())
	default:
		return fmt.Sprintf("%T", v)
	}
}

func isNaN(v any) bool {
	switch n := v.(type) {
	case float64:
		return math.IsNaN(n)
	case float32:
		return math.IsNaN(float64(n))
	case json.Number:
		// Float64 parses "NaN" into a NaN with a nil error.
		f, err := n.Float64()
		return err == nil && math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return math.IsNaN(rv.Float())
	}
	return false
}

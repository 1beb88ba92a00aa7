package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FromType derives a schema from a Go value's type using reflection. The
// schema describes the structure of the type, not the particular value.
//
// Supported types:
//   - struct: an object schema with one property per exported field
//   - slice/array: a homogeneous array schema
//   - map: an open object schema with no declared properties
//   - string, int*, uint*, float*, bool: primitive schemas
//   - []byte: a string schema, matching its JSON encoding
//   - time.Time: a custom "timestamp" type wrapping a string schema
//
// Struct tags follow encoding/json conventions: `json:"name"` renames the
// property, `json:"-"` skips the field, and omitempty makes the property
// optional instead of required. Pointers derive the schema of their
// element type.
//
// Types with no structural JSON shape, such as channels, functions, and
// interfaces, return an error.
func FromType(v any) (Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot derive a schema from nil")
	}
	return fromReflectType(reflect.TypeOf(v))
}

func fromReflectType(t reflect.Type) (Schema, error) {
	if t.Kind() == reflect.Ptr {
		return fromReflectType(t.Elem())
	}

	if t == reflect.TypeOf(time.Time{}) {
		return CustomType("timestamp").WithInner(String()), nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return fromStruct(t)

	case reflect.Slice, reflect.Array:
		// []byte marshals as a base64 string, not an array.
		if t.Elem().Kind() == reflect.Uint8 {
			return String(), nil
		}
		item, err := fromReflectType(t.Elem())
		if err != nil {
			return nil, err
		}
		return ArrayOf(item), nil

	case reflect.Map:
		// Property names are unknowable, so the object is left open.
		return ObjectOf(nil).WithAdditionalProperties(true), nil

	case reflect.String:
		return String(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number(), nil

	case reflect.Bool:
		return Boolean(), nil

	default:
		return nil, fmt.Errorf("cannot derive a schema for %s", t)
	}
}

func fromStruct(t reflect.Type) (Schema, error) {
	properties := make(map[string]Schema)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name := field.Name
		omitempty := false
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
			for _, part := range parts[1:] {
				if part == "omitempty" {
					omitempty = true
					break
				}
			}
		}

		fieldSchema, err := fromReflectType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		properties[name] = fieldSchema

		if !omitempty {
			required = append(required, name)
		}
	}

	return ObjectOf(properties, required...), nil
}

// Package input reads typed fields out of dynamic values.
//
// Validating a map against an object schema tells you it has the right
// shape; this package is for consuming it afterwards without a cast per
// field. All helpers tolerate nil maps, missing keys and wrong types by
// returning the given default (or nil for the collection helpers).
//
// # Usage
//
//	if result := validate.Value(userSchema, raw); !result.Valid {
//	    return result.Err()
//	}
//	name := input.GetString(raw, "name", "")
//	age := input.GetInt(raw, "age", 0)
//	tags := input.GetStringSlice(raw, "tags")
//
// # Coercion
//
// Numbers arrive from JSON decoding as float64 or json.Number and from Go
// callers as any integer or float type; GetInt and GetNumber accept all of
// them, plus numeric strings. GetTime accepts time.Time and RFC 3339
// strings, matching the timestamp format type.
package input

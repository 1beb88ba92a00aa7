// Package format ships ready-made custom types for common string formats.
//
// Each function returns a schema.Custom wrapping a string schema, so a
// non-string value reports both the failed format check and the type
// mismatch. The predicates parse with the standard library (and
// github.com/google/uuid for UUIDs) rather than regular-expression
// approximations, except for hostnames, which have no stdlib parser.
//
// Format predicates are Go functions without a source expression, so they
// do not survive the schema document form; register them at startup with
// Definitions instead of shipping them in definition files.
package format

import (
	"net/mail"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/zero-day-ai/typekit/registry"
	"github.com/zero-day-ai/typekit/schema"
)

// UUID returns a custom type accepting RFC 4122 UUID strings.
func UUID() schema.Custom {
	return stringFormat("uuid", func(s string) bool {
		return uuid.Validate(s) == nil
	})
}

// Email returns a custom type accepting bare RFC 5322 addresses. Addresses
// with a display name, such as "Ada <ada@example.com>", are rejected.
func Email() schema.Custom {
	return stringFormat("email", func(s string) bool {
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s
	})
}

// URL returns a custom type accepting absolute URLs with a scheme and host.
func URL() schema.Custom {
	return stringFormat("url", func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	})
}

// Timestamp returns a custom type accepting RFC 3339 timestamps.
func Timestamp() schema.Custom {
	return stringFormat("timestamp", func(s string) bool {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	})
}

var hostnameRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Hostname returns a custom type accepting RFC 1123 hostnames.
func Hostname() schema.Custom {
	return stringFormat("hostname", func(s string) bool {
		return len(s) <= 253 && hostnameRE.MatchString(s)
	})
}

// Definitions returns a registry definition for every format type, for
// registering the whole set at once:
//
//	for _, def := range format.Definitions() {
//		reg.MustRegister(def)
//	}
func Definitions() []registry.TypeDefinition {
	return []registry.TypeDefinition{
		{Name: "uuid", Schema: UUID(), Description: "RFC 4122 UUID string"},
		{Name: "email", Schema: Email(), Description: "RFC 5322 email address"},
		{Name: "url", Schema: URL(), Description: "Absolute URL with scheme and host"},
		{Name: "timestamp", Schema: Timestamp(), Description: "RFC 3339 timestamp"},
		{Name: "hostname", Schema: Hostname(), Description: "RFC 1123 hostname"},
	}
}

func stringFormat(name string, check func(s string) bool) schema.Custom {
	return schema.CustomType(name).
		WithInner(schema.String()).
		WithValidatorFunc(func(v any) bool {
			s, ok := v.(string)
			return ok && check(s)
		})
}

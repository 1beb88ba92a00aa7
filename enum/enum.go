package enum

import (
	"sort"
	"strings"

	"github.com/zero-day-ai/typekit/registry"
	"github.com/zero-day-ai/typekit/schema"
)

// Set is a membership predicate over a fixed collection of string values.
// The zero value accepts nothing; build sets with Of or Fold.
type Set struct {
	values []string
	lookup map[string]struct{}
	fold   bool
}

// Of builds a set that matches its members exactly.
func Of(values ...string) *Set {
	return newSet(values, false)
}

// Fold builds a set that matches its members case-insensitively. Members
// are stored lowercase.
func Fold(values ...string) *Set {
	return newSet(values, true)
}

func newSet(values []string, fold bool) *Set {
	s := &Set{
		lookup: make(map[string]struct{}, len(values)),
		fold:   fold,
	}
	for _, v := range values {
		if fold {
			v = strings.ToLower(v)
		}
		if _, dup := s.lookup[v]; dup {
			continue
		}
		s.lookup[v] = struct{}{}
		s.values = append(s.values, v)
	}
	sort.Strings(s.values)
	return s
}

// Accept reports whether v is a string belonging to the set.
func (s *Set) Accept(v any) bool {
	str, ok := v.(string)
	if !ok {
		return false
	}
	if s.fold {
		str = strings.ToLower(str)
	}
	_, ok = s.lookup[str]
	return ok
}

// Source returns the set as a CEL membership expression, satisfying
// schema.SourcePredicate. Folded sets lowercase the value before the
// membership test.
func (s *Set) Source() string {
	quoted := make([]string, len(s.values))
	for i, v := range s.values {
		quoted[i] = quote(v)
	}
	list := "[" + strings.Join(quoted, ", ") + "]"
	if s.fold {
		return "value.lowerAscii() in " + list
	}
	return "value in " + list
}

// Values returns the members in sorted order. Folded sets report lowercase
// members.
func (s *Set) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// quote renders v as a single-quoted CEL string literal.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, "'", `\'`)
	return "'" + v + "'"
}

// Definition builds a registry entry for a named enumeration: a custom
// type with a string inner schema and an exact-match membership validator.
func Definition(name, description string, values ...string) registry.TypeDefinition {
	return registry.TypeDefinition{
		Name:        name,
		Description: description,
		Schema: schema.CustomType(name).
			WithInner(schema.String()).
			WithValidator(Of(values...)),
	}
}

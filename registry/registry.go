// Package registry stores named type definitions.
//
// A Registry is an explicit, constructed instance rather than process-wide
// state: create one with New, register definitions, and hand it to whatever
// needs name resolution. New pre-registers the three built-in primitive
// names ("string", "number", "boolean"); names are unique and registration
// of a taken name fails.
//
// Registries are safe for concurrent use. Lookups during validation and
// compatibility checking are read-only and never block each other.
//
// Definition files in YAML or JSON form can be loaded with LoadFile and
// LoadDir; LoadFile documents the file format.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/zero-day-ai/typekit/schema"
)

var (
	// ErrDuplicateType is returned when registering a name that is taken.
	ErrDuplicateType = errors.New("duplicate type name")

	// ErrInvalidDefinition is returned for definitions missing a name or a
	// schema.
	ErrInvalidDefinition = errors.New("invalid type definition")
)

// TypeDefinition binds a schema to a unique name, with an optional
// human-readable description.
type TypeDefinition struct {
	Name        string
	Schema      schema.Schema
	Description string
}

// Registry is a name-to-definition store with unique-name enforcement. The
// zero value is an empty, usable registry; New returns one pre-seeded with
// the built-in primitive types.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]TypeDefinition
}

// New returns a registry with the built-in primitive type names
// registered: "string", "number", and "boolean", each bound to the
// corresponding primitive schema.
func New() *Registry {
	r := &Registry{}
	for _, def := range []TypeDefinition{
		{Name: "string", Schema: schema.String(), Description: "Built-in string type"},
		{Name: "number", Schema: schema.Number(), Description: "Built-in number type"},
		{Name: "boolean", Schema: schema.Boolean(), Description: "Built-in boolean type"},
	} {
		if err := r.Register(def); err != nil {
			panic(fmt.Sprintf("registry: seeding builtins: %v", err))
		}
	}
	return r
}

// Register adds a definition. It fails with ErrInvalidDefinition when the
// definition has no name or no schema, and with ErrDuplicateType when the
// name is already registered.
func (r *Registry) Register(def TypeDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if def.Schema == nil {
		return fmt.Errorf("%w: %s has no schema", ErrInvalidDefinition, def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.defs == nil {
		r.defs = make(map[string]TypeDefinition)
	}
	if _, taken := r.defs[def.Name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateType, def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister is Register that panics on failure, for wiring up types at
// program start.
func (r *Registry) MustRegister(def TypeDefinition) {
	if err := r.Register(def); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (TypeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	return def, ok
}

// Schema returns the schema registered under name. It satisfies the
// compat.Resolver interface, so a Registry can be passed directly to the
// name-keyed compatibility checks.
func (r *Registry) Schema(name string) (schema.Schema, bool) {
	def, ok := r.Get(name)
	return def.Schema, ok
}

// Names returns every registered type name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.defs)
}

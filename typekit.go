package typekit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/zero-day-ai/typekit/compat"
	"github.com/zero-day-ai/typekit/registry"
	"github.com/zero-day-ai/typekit/schema"
	"github.com/zero-day-ai/typekit/validate"
)

// TypeSystem bundles a registry with name-keyed validation and
// compatibility checking. It is safe for concurrent use; all methods that
// look up types read the registry without blocking each other.
type TypeSystem struct {
	reg    *registry.Registry
	logger *slog.Logger
}

// New creates a TypeSystem. Without options it holds a fresh registry with
// only the built-in primitive types.
//
// Example:
//
//	ts, err := typekit.New(
//	    typekit.WithFormats(),
//	    typekit.WithDefinitionDir("./types"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*TypeSystem, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	reg := cfg.registry
	if reg == nil {
		reg = registry.New()
	}

	ts := &TypeSystem{
		reg:    reg,
		logger: cfg.logger,
	}

	for _, path := range cfg.files {
		if err := reg.LoadFile(path); err != nil {
			return nil, NewConfigurationError("New", err)
		}
	}
	for _, dir := range cfg.dirs {
		if err := reg.LoadDir(dir); err != nil {
			return nil, NewConfigurationError("New", err)
		}
	}
	for _, def := range cfg.types {
		if err := reg.Register(def); err != nil {
			return nil, NewConfigurationError("New", err)
		}
	}

	ts.logger.Debug("type system ready", "types", reg.Len())
	return ts, nil
}

// Registry returns the underlying registry, for direct registration or for
// passing to the compat and inspect packages.
func (ts *TypeSystem) Registry() *registry.Registry {
	return ts.reg
}

// Names returns every registered type name in sorted order.
func (ts *TypeSystem) Names() []string {
	return ts.reg.Names()
}

// Register adds a type definition to the underlying registry.
func (ts *TypeSystem) Register(def registry.TypeDefinition) error {
	if err := ts.reg.Register(def); err != nil {
		return NewConfigurationError("TypeSystem.Register", err)
	}
	ts.logger.Debug("registered type", "name", def.Name, "kind", def.Schema.Kind())
	return nil
}

// Validate checks a value against an explicit schema. It is a convenience
// for validate.Value; no registry lookup is involved.
func (ts *TypeSystem) Validate(s schema.Schema, v any) validate.Result {
	return validate.Value(s, v)
}

// ValidateAs checks a value against the schema registered under typeName.
// It returns nil for a valid value, an error wrapping ErrTypeNotFound for
// an unknown name, or an error wrapping ErrInvalidValue carrying the
// validation messages.
func (ts *TypeSystem) ValidateAs(typeName string, v any) error {
	return ts.validateAs(context.Background(), "TypeSystem.ValidateAs", typeName, v)
}

// ValidateAsContext is ValidateAs with a context handed to context-aware
// predicates.
func (ts *TypeSystem) ValidateAsContext(ctx context.Context, typeName string, v any) error {
	return ts.validateAs(ctx, "TypeSystem.ValidateAs", typeName, v)
}

func (ts *TypeSystem) validateAs(ctx context.Context, op, typeName string, v any) error {
	s, ok := ts.reg.Schema(typeName)
	if !ok {
		return NewNotFoundError(op, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName))
	}

	result := validate.ValueContext(ctx, s, v)
	if !result.Valid {
		ts.logger.Debug("validation failed",
			"type", typeName,
			"errors", len(result.Errors))
		return NewValidationError(op,
			fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(result.Errors, "; ")))
	}
	return nil
}

// Compatible reports whether the type named source is structurally
// compatible with the type named target.
func (ts *TypeSystem) Compatible(source, target string) bool {
	return compat.CompatibleTypes(ts.reg, source, target)
}

// CheckCompatibility is Compatible with a reason on failure.
func (ts *TypeSystem) CheckCompatibility(source, target string) compat.Result {
	result := compat.CheckTypes(ts.reg, source, target)
	if !result.Compatible {
		ts.logger.Debug("incompatible types",
			"source", source,
			"target", target,
			"reason", result.Reason)
	}
	return result
}

// Node pairs a value with the name of a registered type it conforms to.
// Nodes are only handed out by NewNode and MustNode, so holding one means
// the value validated at construction time.
type Node struct {
	Type  string
	Value any
}

// NewNode validates value against the named type and returns the typed
// node. The error is the same one ValidateAs would return.
func (ts *TypeSystem) NewNode(typeName string, value any) (Node, error) {
	if err := ts.validateAs(context.Background(), "TypeSystem.NewNode", typeName, value); err != nil {
		return Node{}, err
	}
	return Node{Type: typeName, Value: value}, nil
}

// MustNode is NewNode that panics on failure, for values known valid at
// program start.
func (ts *TypeSystem) MustNode(typeName string, value any) Node {
	node, err := ts.NewNode(typeName, value)
	if err != nil {
		panic(err)
	}
	return node
}

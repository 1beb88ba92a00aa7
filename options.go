package typekit

import (
	"log/slog"

	"github.com/zero-day-ai/typekit/format"
	"github.com/zero-day-ai/typekit/registry"
)

// Option configures a TypeSystem.
type Option func(*config)

// config holds configuration for a TypeSystem under construction.
type config struct {
	logger   *slog.Logger
	registry *registry.Registry
	files    []string
	dirs     []string
	types    []registry.TypeDefinition
}

// WithLogger sets a custom logger. If not provided, a default JSON logger
// at info level is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRegistry uses an existing registry instead of a fresh one. The
// registry is used as-is; no built-in names are added to it.
func WithRegistry(r *registry.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithDefinitionFile loads a YAML or JSON type definition file during New.
// May be given multiple times; files load in the order given.
func WithDefinitionFile(path string) Option {
	return func(c *config) {
		c.files = append(c.files, path)
	}
}

// WithDefinitionDir loads every definition file in a directory during New.
// May be given multiple times.
func WithDefinitionDir(dir string) Option {
	return func(c *config) {
		c.dirs = append(c.dirs, dir)
	}
}

// WithTypes registers definitions during New, after any definition files
// have loaded.
func WithTypes(defs ...registry.TypeDefinition) Option {
	return func(c *config) {
		c.types = append(c.types, defs...)
	}
}

// WithFormats registers the format package's custom types (uuid, email,
// url, timestamp, hostname) during New.
func WithFormats() Option {
	return func(c *config) {
		c.types = append(c.types, format.Definitions()...)
	}
}

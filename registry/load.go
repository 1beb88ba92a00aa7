package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/typekit/expr"
	"github.com/zero-day-ai/typekit/schema"
)

// definitionFile is the on-disk shape of a type definition file.
type definitionFile struct {
	Types []definitionEntry `json:"types" yaml:"types"`
}

type definitionEntry struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      *schema.Doc `json:"schema" yaml:"schema"`
}

// LoadFile reads a type definition file and registers every definition in
// it. The format is YAML or JSON, selected by file extension, holding a
// list of named schema documents:
//
//	types:
//	  - name: port
//	    description: TCP port number
//	    schema:
//	      typeName: port
//	      expr: "value >= 1.0 && value <= 65535.0"
//	      inner:
//	        type: number
//
// Schema documents use the schema.Doc form; expr fields are compiled into
// predicates with the expr package. Definitions registered before a
// failure stay registered.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definition file: %w", err)
	}

	var file definitionFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported definition file extension %q", ext)
	}

	for i, entry := range file.Types {
		if entry.Name == "" {
			return fmt.Errorf("%s: type %d: missing name", path, i)
		}
		if entry.Schema == nil {
			return fmt.Errorf("%s: type %s: missing schema", path, entry.Name)
		}
		s, err := entry.Schema.Schema(schema.WithPredicateCompiler(expr.Compiler()))
		if err != nil {
			return fmt.Errorf("%s: type %s: %w", path, entry.Name, err)
		}
		def := TypeDefinition{
			Name:        entry.Name,
			Schema:      s,
			Description: entry.Description,
		}
		if err := r.Register(def); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// LoadDir loads every definition file directly under dir, in sorted
// file-name order. Files without a .yaml, .yml, or .json extension are
// skipped.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read definition directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			if err := r.LoadFile(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

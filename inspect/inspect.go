// Package inspect renders registry contents for humans.
package inspect

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/zero-day-ai/typekit/registry"
	"github.com/zero-day-ai/typekit/schema"
)

// List writes a table of every registered type to w, one line per type in
// sorted name order.
func List(w io.Writer, r *registry.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tDESCRIPTION")
	for _, name := range r.Names() {
		def, ok := r.Get(name)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Name, def.Schema.Kind(), def.Description)
	}
	return tw.Flush()
}

// Describe writes one type's definition to w, including its schema in
// document form.
func Describe(w io.Writer, r *registry.Registry, name string) error {
	def, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("unknown type %q", name)
	}

	fmt.Fprintf(w, "Name: %s\n", def.Name)
	if def.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", def.Description)
	}
	fmt.Fprintf(w, "Kind: %s\n", def.Schema.Kind())

	doc, err := json.MarshalIndent(schema.NewDoc(def.Schema), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render schema: %w", err)
	}
	fmt.Fprintf(w, "Schema:\n%s\n", doc)
	return nil
}

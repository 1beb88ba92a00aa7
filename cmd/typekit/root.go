package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/typekit"
)

var rootCmd = &cobra.Command{
	Use:   "typekit",
	Short: "Typekit inspects and validates runtime type definitions",
	Long: `Typekit loads type definitions from YAML or JSON files and lets you
list them, validate values against them, and check structural compatibility
between them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringArray("defs", nil, "Definition file or directory to load (repeatable)")
	rootCmd.PersistentFlags().Bool("formats", false, "Register the common string format types")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// newTypeSystem builds a type system from the persistent flags.
func newTypeSystem(cmd *cobra.Command) (*typekit.TypeSystem, error) {
	defs, _ := cmd.Flags().GetStringArray("defs")
	formats, _ := cmd.Flags().GetBool("formats")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []typekit.Option{typekit.WithLogger(logger)}
	if formats {
		opts = append(opts, typekit.WithFormats())
	}
	for _, path := range defs {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read definitions %s: %w", path, err)
		}
		if info.IsDir() {
			opts = append(opts, typekit.WithDefinitionDir(path))
		} else {
			opts = append(opts, typekit.WithDefinitionFile(path))
		}
	}
	return typekit.New(opts...)
}

package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/zero-day-ai/typekit/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <type> <value>",
	Short: "Validate a JSON value against a registered type",
	Long: `Decodes a JSON value and validates it against the named type, printing
one line per validation error. The value is read from a file when the
argument names one, from stdin when it is "-", and otherwise parsed as a
JSON literal.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := newTypeSystem(cmd)
		if err != nil {
			fmt.Printf("Error loading types: %v\n", err)
			os.Exit(1)
		}

		typeName := args[0]
		s, ok := ts.Registry().Schema(typeName)
		if !ok {
			fmt.Printf("Unknown type: %s\n", typeName)
			os.Exit(1)
		}

		value, err := readValue(args[1])
		if err != nil {
			fmt.Printf("Error reading value: %v\n", err)
			os.Exit(1)
		}

		result := validate.Value(s, value)
		if !result.Valid {
			for _, msg := range result.Errors {
				fmt.Println(msg)
			}
			os.Exit(1)
		}
		fmt.Println("Value is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// readValue decodes the JSON value named by arg: a file path, "-" for
// stdin, or an inline JSON literal.
func readValue(arg string) (any, error) {
	var raw []byte
	switch {
	case arg == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		raw = data
	default:
		if _, err := os.Stat(arg); err == nil {
			data, err := os.ReadFile(arg)
			if err != nil {
				return nil, err
			}
			raw = data
		} else {
			raw = []byte(arg)
		}
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return value, nil
}

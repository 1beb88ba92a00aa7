package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/typekit/inspect"
)

var describeCmd = &cobra.Command{
	Use:   "describe <type>",
	Short: "Show the full schema of a registered type",
	Long:  `Prints the name, kind, description and JSON schema document of one registered type.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := newTypeSystem(cmd)
		if err != nil {
			fmt.Printf("Error loading types: %v\n", err)
			os.Exit(1)
		}

		if err := inspect.Describe(os.Stdout, ts.Registry(), args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/typekit/inspect"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered type",
	Long:  `Prints a table of all registered types with their kind and description.`,
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := newTypeSystem(cmd)
		if err != nil {
			fmt.Printf("Error loading types: %v\n", err)
			os.Exit(1)
		}

		if err := inspect.List(os.Stdout, ts.Registry()); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

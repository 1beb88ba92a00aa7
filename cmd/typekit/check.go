package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <source> <target>",
	Short: "Check structural compatibility between two types",
	Long: `Checks whether a value of the source type can be used where the target
type is expected, and prints the reason when it cannot.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := newTypeSystem(cmd)
		if err != nil {
			fmt.Printf("Error loading types: %v\n", err)
			os.Exit(1)
		}

		source, target := args[0], args[1]
		report := ts.CheckCompatibility(source, target)
		if !report.Compatible {
			fmt.Println(report.Reason)
			os.Exit(1)
		}
		fmt.Printf("%s is compatible with %s ✅\n", source, target)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexgap/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a graph definition for consistency",
	Long:  `Builds the graph and reports dangling edges, malformed edges, cycles and unreachable nodes.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("graph")
		if len(args) > 0 {
			path = args[0]
		}

		g, err := cli.LoadGraph(path)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		if orphans := g.Unreachable(); len(orphans) > 0 {
			fmt.Printf("Warning: unreachable nodes: %v\n", orphans)
		}
		fmt.Printf("Graph is valid (%d nodes, root %s). ✅\n", g.Len(), g.RootID())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

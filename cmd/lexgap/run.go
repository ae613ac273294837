package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexgap"
	"github.com/aretw0/lexgap/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive triage session",
	Long:  `Walks through the decision questions one at a time and records the resulting classification.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{
			Store: storeOptions(cmd),
		}
		opts.GraphPath, _ = cmd.Flags().GetString("graph")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")

		if err := cli.RunSession(lexgap.Version, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	rootCmd.AddCommand(runCmd)
}

func storeOptions(cmd *cobra.Command) cli.StoreOptions {
	var opts cli.StoreOptions
	opts.Path, _ = cmd.Flags().GetString("store")
	opts.RedisURL, _ = cmd.Flags().GetString("redis")
	return opts
}

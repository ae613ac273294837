package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexgap",
	Short: "lexgap classifies requests as legislation gap, bug or improvement",
	Long: `lexgap walks you through a fixed sequence of yes/no questions to classify
a request as a legislation gap, a bug, or a requirement/improvement, and
records the classification locally for later review.`,
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
	rootCmd.PersistentFlags().String("store", "", "Path of the history JSON file (default .lexgap/history.json)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address (host:port); replaces the file store when set")
	rootCmd.PersistentFlags().String("graph", "", "Path of a YAML graph definition (default: built-in legislation tree)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

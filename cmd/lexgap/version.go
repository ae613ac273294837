package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexgap"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lexgap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lexgap version %s\n", lexgap.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

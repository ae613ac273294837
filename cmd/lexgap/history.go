package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexgap/internal/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analyses",
	Long:  `Lists persisted classifications, most recent first, with optional keyword, submitter and date filters.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.HistoryOptions{
			Store: storeOptions(cmd),
		}
		opts.Keyword, _ = cmd.Flags().GetString("keyword")
		opts.Submitter, _ = cmd.Flags().GetString("submitter")
		opts.From, _ = cmd.Flags().GetString("from")
		opts.To, _ = cmd.Flags().GetString("to")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		if err := cli.ListHistory(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	historyCmd.Flags().String("keyword", "", "Substring match (case-insensitive) against details")
	historyCmd.Flags().String("submitter", "", "Substring match (case-insensitive) against submitter name")
	historyCmd.Flags().String("from", "", "Inclusive lower bound, local calendar day (YYYY-MM-DD)")
	historyCmd.Flags().String("to", "", "Inclusive upper bound, local calendar day (YYYY-MM-DD)")
	historyCmd.Flags().BoolP("verbose", "v", false, "Show the answered questions of each entry")
	rootCmd.AddCommand(historyCmd)
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lexgap/internal/logging"
	"github.com/aretw0/lexgap/internal/presentation/tui"
	"github.com/aretw0/lexgap/pkg/history"
)

// HistoryOptions configures the history listing.
type HistoryOptions struct {
	Store     StoreOptions
	Keyword   string
	Submitter string
	From      string // YYYY-MM-DD, inclusive
	To        string // YYYY-MM-DD, inclusive
	Verbose   bool
	Debug     bool
}

const dateLayout = "2006-01-02"

// ListHistory prints persisted analyses matching the filters.
func ListHistory(opts HistoryOptions) error {
	logger := logging.ForDebug(opts.Debug)

	filter := history.Filter{
		Keyword:   opts.Keyword,
		Submitter: opts.Submitter,
	}
	var err error
	if opts.From != "" {
		if filter.From, err = time.ParseInLocation(dateLayout, opts.From, time.Local); err != nil {
			return fmt.Errorf("invalid --from date (want YYYY-MM-DD): %w", err)
		}
	}
	if opts.To != "" {
		if filter.To, err = time.ParseInLocation(dateLayout, opts.To, time.Local); err != nil {
			return fmt.Errorf("invalid --to date (want YYYY-MM-DD): %w", err)
		}
	}

	store := SetupStore(opts.Store, logger)
	svc := history.NewService(store, history.WithLogger(logger))

	entries, err := svc.List(context.Background(), filter)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No analyses recorded.")
		return nil
	}

	for _, e := range entries {
		d := tui.Display(e.Outcome)
		fmt.Printf("%s  %s  %s  by %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			tui.Colorize(e.Outcome, string(e.Outcome)),
			d.Title,
			e.SubmitterName,
		)
		fmt.Printf("    %s\n", e.Details)
		if opts.Verbose {
			for _, qa := range e.AnsweredQuestions {
				fmt.Printf("      [%s] %s\n", qa.Answer, qa.QuestionText)
			}
		}
	}
	fmt.Printf("%d entr%s.\n", len(entries), pluralY(len(entries)))
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

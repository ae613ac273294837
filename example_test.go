package lexgap_test

import (
	"context"
	"fmt"

	"github.com/aretw0/lexgap"
	"github.com/aretw0/lexgap/pkg/adapters/memory"
	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/history"
)

// Example demonstrates a full triage: walking the built-in tree to an
// outcome, recording the analysis, and reading it back. An in-memory store
// keeps the example self-contained; the CLI uses the file store instead.
func Example() {
	store := memory.NewStore()
	triage := lexgap.New(lexgap.WithStore(store))

	sess := triage.NewSession()

	// The norm is in force, and the current behavior is a team agreement.
	for _, a := range []domain.Answer{domain.AnswerYes, domain.AnswerYes} {
		if err := sess.SelectAnswer(a); err != nil {
			fmt.Println("select:", err)
			return
		}
		if err := sess.Advance(); err != nil {
			fmt.Println("advance:", err)
			return
		}
	}

	outcome, _ := sess.Outcome()
	fmt.Println("outcome:", outcome)

	ctx := context.Background()
	if _, err := sess.FinalizeSubmission(ctx, "TISS batch export, ticket ABC-123.", "Joana"); err != nil {
		fmt.Println("finalize:", err)
		return
	}

	entries, err := triage.History().List(ctx, history.Filter{Keyword: "tiss"})
	if err != nil {
		fmt.Println("list:", err)
		return
	}
	fmt.Println("recorded:", len(entries), "entry by", entries[0].SubmitterName)

	// Output:
	// outcome: GAP
	// recorded: 1 entry by Joana
}

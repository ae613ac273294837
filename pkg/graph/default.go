package graph

import "github.com/aretw0/lexgap/pkg/domain"

// Node IDs of the built-in legislation triage tree.
const (
	NodeInForce         = "q_in_force"
	NodeTeamWorkaround  = "q_team_workaround"
	NodeNeverHadFeature = "q_never_had_feature"
	NodePartialManual   = "q_partial_manual"
	NodeBulletin        = "q_bulletin"
)

// Option configures the built-in tree.
type Option func(*defaults)

type defaults struct {
	fallback domain.Outcome
}

// WithFallbackOutcome overrides the classification used when no bulletin or
// official document is found on the final question. The shipped default is
// IMPROVEMENT, but the business rule behind it was never confirmed, so it is
// deliberately configurable rather than hard-coded.
func WithFallbackOutcome(o domain.Outcome) Option {
	return func(d *defaults) {
		d.fallback = o
	}
}

// Default returns the built-in legislation triage tree: five yes/no
// questions classifying a request as GAP, BUG or IMPROVEMENT.
func Default(opts ...Option) *Graph {
	d := defaults{fallback: domain.OutcomeImprovement}
	for _, opt := range opts {
		opt(&d)
	}

	g, err := New(NodeInForce,
		domain.Node{
			ID:    NodeInForce,
			Text:  "Does the request refer to a norm or law that is already in force?",
			Hint:  "Example: a new TISS version that is not yet in force.",
			OnYes: domain.Edge{Next: NodeTeamWorkaround},
			OnNo:  domain.Edge{Outcome: domain.OutcomeGap},
		},
		domain.Node{
			ID:    NodeTeamWorkaround,
			Text:  "Is the current system behavior a team agreement, or written into some issue as a \"we did it this way\" due to deadline, knowledge, etc.?",
			OnYes: domain.Edge{Outcome: domain.OutcomeGap},
			OnNo:  domain.Edge{Next: NodeNeverHadFeature},
		},
		domain.Node{
			ID:    NodeNeverHadFeature,
			Text:  "Has the system never had a feature or handling for this legal requirement?",
			Hint:  "Examples:\nSUS reimbursement export in the A500 layout — the system does not have the feature at all.\nTISS claim-denial appeal export — the system only handles the import side.",
			OnYes: domain.Edge{Outcome: domain.OutcomeGap},
			OnNo:  domain.Edge{Next: NodePartialManual},
		},
		domain.Node{
			ID:    NodePartialManual,
			Text:  "Does the system cover it only partially, with the full requirement explicit in the official manual?",
			Hint:  "Example:\nthe recognized quantity in the A550 must be lower than the billed one in certain situations — never done right, and at some point it started producing posting errors.\nGuide batch export not following a TISS manual rule.",
			OnYes: domain.Edge{Outcome: domain.OutcomeBug},
			OnNo:  domain.Edge{Next: NodeBulletin},
		},
		domain.Node{
			ID:    NodeBulletin,
			Text:  "Is there a bulletin or official document indicating the change?",
			OnYes: domain.Edge{Outcome: domain.OutcomeGap},
			OnNo:  domain.Edge{Outcome: d.fallback},
		},
	)
	if err != nil {
		// The built-in tree is covered by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return g
}

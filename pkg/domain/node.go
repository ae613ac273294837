package domain

import "fmt"

// Edge is one outgoing path of a question node. Exactly one of Next or
// Outcome must be set: either the walk continues at another node, or it
// terminates with a classification.
type Edge struct {
	Next    string  `json:"next,omitempty" yaml:"next,omitempty" mapstructure:"next"`
	Outcome Outcome `json:"outcome,omitempty" yaml:"outcome,omitempty" mapstructure:"outcome"`
}

// Terminal reports whether following this edge ends the walk.
func (e Edge) Terminal() bool {
	return e.Outcome != ""
}

// WellFormed reports whether the edge carries exactly one destination.
func (e Edge) WellFormed() bool {
	if e.Terminal() {
		return e.Next == "" && e.Outcome.Valid()
	}
	return e.Next != ""
}

// Node represents a single yes/no question in the decision graph.
// Nodes are defined once at load time and never mutated.
type Node struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Text string `json:"text" yaml:"text" mapstructure:"text"`

	// Hint carries optional supplementary guidance shown on demand.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty" mapstructure:"hint"`

	OnYes Edge `json:"on_yes" yaml:"on_yes" mapstructure:"on_yes"`
	OnNo  Edge `json:"on_no" yaml:"on_no" mapstructure:"on_no"`
}

// Edge returns the outgoing edge for the given answer.
func (n Node) Edge(a Answer) (Edge, error) {
	switch a {
	case AnswerYes:
		return n.OnYes, nil
	case AnswerNo:
		return n.OnNo, nil
	}
	return Edge{}, fmt.Errorf("node %q: no edge for answer %q", n.ID, a)
}

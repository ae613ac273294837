package graph

import (
	"fmt"

	"github.com/aretw0/lexgap/pkg/domain"
)

// AggregateError collects every structural problem found in one validation
// pass, so a broken graph file reports all defects at once.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d graph errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the collected errors to errors.Is/As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// validate runs the full structural check: root presence, edge shape,
// dangling targets and cycles reachable from the root.
func (g *Graph) validate() error {
	var errs []error

	if g.root == "" {
		errs = append(errs, &domain.ConfigurationError{Reason: "empty root id"})
	} else if _, ok := g.nodes[g.root]; !ok {
		errs = append(errs, &domain.ConfigurationError{NodeID: g.root, Reason: "root node missing"})
	}

	for _, id := range g.IDs() {
		node := g.nodes[id]
		edges := []struct {
			label string
			edge  domain.Edge
		}{
			{"on_yes", node.OnYes},
			{"on_no", node.OnNo},
		}
		for _, pair := range edges {
			label, e := pair.label, pair.edge
			if !e.WellFormed() {
				errs = append(errs, &domain.ConfigurationError{
					NodeID: id,
					Reason: fmt.Sprintf("edge %s must carry exactly one of next-node or outcome", label),
				})
				continue
			}
			if e.Terminal() {
				continue
			}
			if _, ok := g.nodes[e.Next]; !ok {
				errs = append(errs, &domain.ConfigurationError{
					NodeID: id,
					Reason: fmt.Sprintf("edge %s points to missing node %q", label, e.Next),
				})
			}
		}
	}

	// Cycle detection only makes sense on a structurally sound graph.
	if len(errs) == 0 {
		if cycle := g.findCycle(); cycle != "" {
			errs = append(errs, &domain.ConfigurationError{
				NodeID: cycle,
				Reason: "cycle reachable from root (walk would never terminate)",
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// findCycle runs a colored DFS from the root. It returns the ID of a node
// on a cycle, or "" if every path terminates.
func (g *Graph) findCycle() string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)
	color := make(map[string]int, len(g.nodes))

	var visit func(id string) string
	visit = func(id string) string {
		color[id] = gray
		node := g.nodes[id]
		for _, e := range []domain.Edge{node.OnYes, node.OnNo} {
			if e.Terminal() {
				continue
			}
			switch color[e.Next] {
			case gray:
				return e.Next
			case white:
				if hit := visit(e.Next); hit != "" {
					return hit
				}
			}
		}
		color[id] = black
		return ""
	}

	if _, ok := g.nodes[g.root]; !ok {
		return ""
	}
	return visit(g.root)
}

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/graph"
)

func terminal(o domain.Outcome) domain.Edge {
	return domain.Edge{Outcome: o}
}

func to(id string) domain.Edge {
	return domain.Edge{Next: id}
}

func TestNew_ValidGraph(t *testing.T) {
	g, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: to("b"), OnNo: terminal(domain.OutcomeGap)},
		domain.Node{ID: "b", Text: "B?", OnYes: terminal(domain.OutcomeBug), OnNo: terminal(domain.OutcomeImprovement)},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "a", g.Root().ID)
	assert.Empty(t, g.Unreachable())

	node, err := g.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "B?", node.Text)

	_, err = g.Get("ghost")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestNew_DanglingEdge(t *testing.T) {
	_, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: to("ghost"), OnNo: terminal(domain.OutcomeGap)},
	)
	require.Error(t, err)

	var confErr *domain.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Reason, "missing node")
}

func TestNew_MalformedEdges(t *testing.T) {
	t.Run("Neither Destination", func(t *testing.T) {
		_, err := graph.New("a",
			domain.Node{ID: "a", Text: "A?", OnYes: domain.Edge{}, OnNo: terminal(domain.OutcomeGap)},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one")
	})

	t.Run("Both Destinations", func(t *testing.T) {
		_, err := graph.New("a",
			domain.Node{ID: "a", Text: "A?",
				OnYes: domain.Edge{Next: "a", Outcome: domain.OutcomeGap},
				OnNo:  terminal(domain.OutcomeGap)},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one")
	})

	t.Run("Unknown Outcome", func(t *testing.T) {
		_, err := graph.New("a",
			domain.Node{ID: "a", Text: "A?",
				OnYes: domain.Edge{Outcome: "MAYBE"},
				OnNo:  terminal(domain.OutcomeGap)},
		)
		require.Error(t, err)
	})
}

func TestNew_Cycle(t *testing.T) {
	_, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: to("b"), OnNo: terminal(domain.OutcomeGap)},
		domain.Node{ID: "b", Text: "B?", OnYes: to("a"), OnNo: terminal(domain.OutcomeImprovement)},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestNew_SelfLoop(t *testing.T) {
	_, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: to("a"), OnNo: terminal(domain.OutcomeGap)},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := graph.New("ghost",
		domain.Node{ID: "a", Text: "A?", OnYes: terminal(domain.OutcomeGap), OnNo: terminal(domain.OutcomeBug)},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root")
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: terminal(domain.OutcomeGap), OnNo: terminal(domain.OutcomeBug)},
		domain.Node{ID: "a", Text: "A again?", OnYes: terminal(domain.OutcomeGap), OnNo: terminal(domain.OutcomeBug)},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_AggregatesAllErrors(t *testing.T) {
	_, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: to("ghost1"), OnNo: to("ghost2")},
	)
	require.Error(t, err)

	var aggr *graph.AggregateError
	require.ErrorAs(t, err, &aggr)
	assert.Len(t, aggr.Errors, 2, "both dangling edges reported in one pass")
}

func TestUnreachable(t *testing.T) {
	g, err := graph.New("a",
		domain.Node{ID: "a", Text: "A?", OnYes: terminal(domain.OutcomeGap), OnNo: terminal(domain.OutcomeBug)},
		domain.Node{ID: "island", Text: "Never asked?", OnYes: terminal(domain.OutcomeGap), OnNo: terminal(domain.OutcomeBug)},
	)
	require.NoError(t, err, "unreachable nodes are a smell, not an error")
	assert.Equal(t, []string{"island"}, g.Unreachable())
}

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/graph"
)

func TestDefault(t *testing.T) {
	g := graph.Default()

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, graph.NodeInForce, g.RootID())
	assert.Empty(t, g.Unreachable())

	root := g.Root()
	assert.NotEmpty(t, root.Text)
	assert.NotEmpty(t, root.Hint)
	assert.Equal(t, graph.NodeTeamWorkaround, root.OnYes.Next)
	assert.Equal(t, domain.OutcomeGap, root.OnNo.Outcome)

	bulletin, err := g.Get(graph.NodeBulletin)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeGap, bulletin.OnYes.Outcome)
	assert.Equal(t, domain.OutcomeImprovement, bulletin.OnNo.Outcome)
}

func TestDefault_FallbackOverride(t *testing.T) {
	g := graph.Default(graph.WithFallbackOutcome(domain.OutcomeBug))

	bulletin, err := g.Get(graph.NodeBulletin)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeBug, bulletin.OnNo.Outcome)
}

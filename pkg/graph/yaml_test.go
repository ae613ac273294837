package graph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/graph"
)

const sampleGraph = `
root: q_start
nodes:
  - id: q_start
    text: "Is it already in force?"
    hint: "Supplementary guidance."
    on_yes: {next: q_second}
    on_no: {outcome: GAP}
  - id: q_second
    text: "Is there a bulletin?"
    on_yes: {outcome: GAP}
    on_no: {outcome: IMPROVEMENT}
`

func TestParse(t *testing.T) {
	g, err := graph.Parse([]byte(sampleGraph))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "q_start", g.RootID())

	root := g.Root()
	assert.Equal(t, "Is it already in force?", root.Text)
	assert.Equal(t, "Supplementary guidance.", root.Hint)
	assert.Equal(t, "q_second", root.OnYes.Next)
	assert.Equal(t, domain.OutcomeGap, root.OnNo.Outcome)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := graph.Parse([]byte("nodes: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse graph yaml")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := graph.Parse([]byte(`
root: a
nodes:
  - id: a
    text: "A?"
    typo_field: true
    on_yes: {outcome: GAP}
    on_no: {outcome: BUG}
`))
	require.Error(t, err, "unknown node fields are rejected, not ignored")
}

func TestParse_InvalidGraph(t *testing.T) {
	_, err := graph.Parse([]byte(`
root: a
nodes:
  - id: a
    text: "A?"
    on_yes: {next: ghost}
    on_no: {outcome: GAP}
`))
	require.Error(t, err)

	var confErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleGraph), 0644))

	g, err := graph.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	_, err = graph.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

package graph

import (
	"fmt"
	"sort"

	"github.com/aretw0/lexgap/pkg/domain"
)

// Graph is a validated, read-only decision graph.
type Graph struct {
	nodes map[string]domain.Node
	root  string
}

// New builds a Graph from a root ID and a set of nodes, running the full
// structural validation. A non-nil error means the configuration is unusable.
func New(root string, nodes ...domain.Node) (*Graph, error) {
	index := make(map[string]domain.Node, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return nil, &domain.ConfigurationError{Reason: "node with empty id"}
		}
		if _, dup := index[n.ID]; dup {
			return nil, &domain.ConfigurationError{NodeID: n.ID, Reason: "duplicate node id"}
		}
		index[n.ID] = n
	}

	g := &Graph{nodes: index, root: root}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Get resolves a node by ID. It returns domain.ErrNodeNotFound (wrapped)
// when the ID is unknown.
func (g *Graph) Get(id string) (domain.Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return domain.Node{}, fmt.Errorf("node %q: %w", id, domain.ErrNodeNotFound)
	}
	return n, nil
}

// Root returns the entry node of the graph.
func (g *Graph) Root() domain.Node {
	return g.nodes[g.root]
}

// RootID returns the entry node's identifier.
func (g *Graph) RootID() string {
	return g.root
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns all node identifiers in stable order.
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Unreachable returns the IDs of nodes that no answer sequence from the
// root can reach. A non-empty result is a configuration smell, not an error.
func (g *Graph) Unreachable() []string {
	visited := g.reachable()

	var orphans []string
	for _, id := range g.IDs() {
		if !visited[id] {
			orphans = append(orphans, id)
		}
	}
	return orphans
}

// reachable crawls the graph from the root following both edges.
func (g *Graph) reachable() map[string]bool {
	visited := make(map[string]bool, len(g.nodes))
	queue := []string{g.root}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if visited[id] {
			continue
		}
		visited[id] = true

		node, ok := g.nodes[id]
		if !ok {
			continue
		}
		for _, e := range []domain.Edge{node.OnYes, node.OnNo} {
			if !e.Terminal() && e.Next != "" && !visited[e.Next] {
				queue = append(queue, e.Next)
			}
		}
	}
	return visited
}

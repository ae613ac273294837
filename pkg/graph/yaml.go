package graph

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/lexgap/pkg/domain"
)

// document is the on-disk YAML shape of a graph definition.
type document struct {
	Root  string           `yaml:"root"`
	Nodes []map[string]any `yaml:"nodes"`
}

// LoadFile reads and validates a graph definition from a YAML file.
//
// Node entries are decoded through mapstructure so the file format stays a
// plain mapping rather than being coupled to struct field names:
//
//	root: q_in_force
//	nodes:
//	  - id: q_in_force
//	    text: "Does the request refer to a norm already in force?"
//	    hint: "Optional supplementary guidance."
//	    on_yes: {next: q_team_workaround}
//	    on_no: {outcome: GAP}
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Graph from raw YAML bytes.
func Parse(data []byte) (*Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph yaml: %w", err)
	}

	nodes := make([]domain.Node, 0, len(doc.Nodes))
	for i, raw := range doc.Nodes {
		var node domain.Node
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &node,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, fmt.Errorf("build node decoder: %w", err)
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("decode node %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}

	return New(doc.Root, nodes...)
}

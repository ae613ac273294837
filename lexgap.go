package lexgap

import (
	"log/slog"

	"github.com/aretw0/lexgap/internal/adapters/file"
	"github.com/aretw0/lexgap/pkg/graph"
	"github.com/aretw0/lexgap/pkg/history"
	"github.com/aretw0/lexgap/pkg/ports"
	"github.com/aretw0/lexgap/pkg/session"
)

// Version is the released lexgap version.
const Version = "0.3.0"

// Triage is the high-level entry point for the lexgap library. It bundles a
// decision graph and a durable history store, and hands out sessions and
// the read-side service over the same store.
type Triage struct {
	graph  *graph.Graph
	store  ports.HistoryStore
	logger *slog.Logger
}

// Option defines a functional option for configuring the Triage.
type Option func(*Triage)

// WithGraph injects a custom decision graph, replacing the built-in
// legislation tree.
func WithGraph(g *graph.Graph) Option {
	return func(t *Triage) {
		t.graph = g
	}
}

// WithStore injects a custom history store, replacing the default local
// JSON file.
func WithStore(store ports.HistoryStore) Option {
	return func(t *Triage) {
		t.store = store
	}
}

// WithLogger sets a structured logger passed down to sessions and queries.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Triage) {
		t.logger = logger
	}
}

// New initializes a Triage. Defaults: the built-in legislation tree and a
// JSON file store at .lexgap/history.json.
func New(opts ...Option) *Triage {
	t := &Triage{}
	for _, opt := range opts {
		opt(t)
	}
	if t.graph == nil {
		t.graph = graph.Default()
	}
	if t.store == nil {
		t.store = file.New("")
	}
	return t
}

// NewSession starts a fresh traversal session at the graph root.
func (t *Triage) NewSession() *session.Session {
	opts := []session.Option{}
	if t.logger != nil {
		opts = append(opts, session.WithLogger(t.logger))
	}
	return session.New(t.graph, t.store, opts...)
}

// History returns the read-side service over the persisted entries.
func (t *Triage) History() *history.Service {
	opts := []history.Option{}
	if t.logger != nil {
		opts = append(opts, history.WithLogger(t.logger))
	}
	return history.NewService(t.store, opts...)
}

// Graph exposes the decision graph in use.
func (t *Triage) Graph() *graph.Graph {
	return t.graph
}

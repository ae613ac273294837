package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/lexgap/internal/adapters/file"
	redisstore "github.com/aretw0/lexgap/internal/adapters/redis"
	"github.com/aretw0/lexgap/pkg/graph"
	"github.com/aretw0/lexgap/pkg/ports"
)

// StoreOptions selects and configures the durable history store.
type StoreOptions struct {
	Path     string // JSON file path (default backend)
	RedisURL string // host:port; when set, Redis replaces the file backend
}

// SetupStore builds the history store from the options. The file backend is
// the default; Redis is opt-in for teams sharing one history.
func SetupStore(opts StoreOptions, logger *slog.Logger) ports.HistoryStore {
	if opts.RedisURL != "" {
		logger.Debug("using redis history store", "addr", opts.RedisURL)
		return redisstore.New(opts.RedisURL, "", 0)
	}
	logger.Debug("using file history store", "path", opts.Path)
	return file.New(opts.Path)
}

// LoadGraph returns the graph to run: the built-in legislation tree, or a
// custom YAML definition when a path is given.
func LoadGraph(path string) (*graph.Graph, error) {
	if path == "" {
		return graph.Default(), nil
	}
	g, err := graph.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	return g, nil
}

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/lexgap/pkg/domain"
)

// Store implements ports.HistoryStore using a single JSON file on the local
// filesystem. The file holds the full ordered list under one fixed path,
// mirroring a key-value store with a single logical key.
type Store struct {
	Path string
}

// New creates a new Store writing to the given file path.
// If path is empty, it defaults to ".lexgap/history.json".
func New(path string) *Store {
	if path == "" {
		path = filepath.Join(".lexgap", "history.json")
	}
	return &Store{Path: path}
}

// Read loads the persisted list. A missing file means nothing has been
// written yet and yields an empty list; corrupted content is surfaced as an
// error and never silently discarded.
func (s *Store) Read(ctx context.Context) ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return entries, nil
}

// Write persists the full list to the JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Write(ctx context.Context, entries []domain.HistoryEntry) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}

	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	// Same directory as the destination, so the rename stays on one
	// filesystem (required for atomicity).
	tmpFile, err := os.CreateTemp(dir, "tmp-history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if the destination exists. The small
	// delete+rename window is acceptable for single-user CLI usage compared
	// to risking a partially written file.
	if _, err := os.Stat(s.Path); err == nil {
		if err := os.Remove(s.Path); err != nil {
			return fmt.Errorf("failed to remove existing history file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}

	return nil
}

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexgap/internal/adapters/file"
	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "history.json"))
	ports.RunHistoryStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".lexgap", "history.json"), store.Path)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.json")
	store := file.New(path)

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	err := store.Write(context.Background(), []domain.HistoryEntry{
		domain.NewHistoryEntry("a", at, nil, domain.OutcomeGap, "details", "tester"),
	})
	require.NoError(t, err)

	loaded, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestFileStore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := file.New(path).Read(context.Background())
	require.Error(t, err, "corrupted content is surfaced, never silently discarded")

	// The broken file must still be there for inspection.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := file.New(filepath.Join(dir, "history.json"))

	require.NoError(t, store.Write(context.Background(), nil))
	require.NoError(t, store.Write(context.Background(), nil)) // overwrite path

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "history.json", entries[0].Name())
}

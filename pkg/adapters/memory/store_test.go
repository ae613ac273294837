package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexgap/pkg/adapters/memory"
	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunHistoryStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	written := []domain.HistoryEntry{
		domain.NewHistoryEntry("a", at, nil, domain.OutcomeGap, "details", "tester"),
	}
	require.NoError(t, store.Write(ctx, written))

	// Mutating the written slice afterwards must not leak into the store.
	written[0].ID = "mutated"

	loaded, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", loaded[0].ID)

	// Nor can a caller mutate store state through the read slice.
	loaded[0].ID = "mutated-again"
	reloaded, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", reloaded[0].ID)
}

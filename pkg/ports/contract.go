package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexgap/pkg/domain"
)

// RunHistoryStoreContract runs a suite of tests to verify that a
// HistoryStore implementation adheres to the defined interface contract.
func RunHistoryStoreContract(t *testing.T, store HistoryStore) {
	ctx := context.Background()

	entry := func(id string, at time.Time) domain.HistoryEntry {
		return domain.NewHistoryEntry(id, at,
			[]domain.QuestionAnswer{
				{QuestionID: "q_in_force", QuestionText: "In force?", Answer: domain.AnswerNo},
			},
			domain.OutcomeGap, "details for "+id, "contract tester")
	}

	t.Run("Read Empty", func(t *testing.T) {
		entries, err := store.Read(ctx)
		require.NoError(t, err, "Read on an empty store should not fail")
		assert.Empty(t, entries)
	})

	t.Run("Write and Read", func(t *testing.T) {
		base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		list := []domain.HistoryEntry{
			entry("second", base.Add(time.Hour)),
			entry("first", base),
		}

		require.NoError(t, store.Write(ctx, list))

		loaded, err := store.Read(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		// Order must survive the round trip: most recent first.
		assert.Equal(t, "second", loaded[0].ID)
		assert.Equal(t, "first", loaded[1].ID)
		assert.Equal(t, domain.OutcomeGap, loaded[0].Outcome)
		assert.True(t, loaded[0].Timestamp.Equal(base.Add(time.Hour)))
		require.Len(t, loaded[0].AnsweredQuestions, 1)
		assert.Equal(t, domain.AnswerNo, loaded[0].AnsweredQuestions[0].Answer)
	})

	t.Run("Write Replaces", func(t *testing.T) {
		at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		require.NoError(t, store.Write(ctx, []domain.HistoryEntry{entry("only", at)}))

		loaded, err := store.Read(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "only", loaded[0].ID)
	})

	t.Run("Write Empty List", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, nil))

		loaded, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

package ports

import (
	"context"

	"github.com/aretw0/lexgap/pkg/domain"
)

// HistoryStore is the durable store for finalized classification records.
//
// The store owns one ordered list under a single fixed logical key, most
// recent entry first. There are no partial updates: each Write replaces the
// full list. Across processes the consistency model is last-write-wins.
type HistoryStore interface {
	// Read returns the full ordered list, or an empty list if nothing has
	// been written yet.
	Read(ctx context.Context) ([]domain.HistoryEntry, error)

	// Write replaces the full ordered list.
	Write(ctx context.Context, entries []domain.HistoryEntry) error
}

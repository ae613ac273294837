package history

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/lexgap/internal/logging"
	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/ports"
)

// Filter narrows a history listing. All set predicates are ANDed; zero
// values impose no constraint.
type Filter struct {
	// Keyword matches case-insensitively against entry details.
	Keyword string
	// Submitter matches case-insensitively against the submitter name.
	Submitter string
	// From is the inclusive lower bound, interpreted as the start of that
	// local calendar day.
	From time.Time
	// To is the inclusive upper bound, interpreted as the end of that local
	// calendar day.
	To time.Time
}

// Service lists persisted entries.
type Service struct {
	store  ports.HistoryStore
	logger *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a structured logger for read-side events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a read-side service over the given store.
func NewService(store ports.HistoryStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the entries matching the filter, sorted by timestamp
// descending with ties kept in insertion order (most recently appended
// first). On a store read failure it returns an empty result alongside the
// error rather than crashing; the underlying data is never discarded.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.HistoryEntry, error) {
	raw, err := s.store.Read(ctx)
	if err != nil {
		s.logger.Error("history read failed", "err", err)
		return []domain.HistoryEntry{}, &domain.PersistenceError{Op: "read", Err: err}
	}

	entries := sanitize(raw)

	// The store keeps most-recent-first; a stable sort preserves that
	// ordering for entries sharing a timestamp.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	out := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if matches(e, f) {
			out = append(out, e)
		}
	}
	return out, nil
}

// sanitize repairs entries written by previous schema versions instead of
// failing the whole load: a missing answer log becomes empty, a missing
// timestamp becomes the earliest representable instant, and the gap-like
// flag is always recomputed from the outcome, never trusted from storage.
func sanitize(raw []domain.HistoryEntry) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, len(raw))
	for i, e := range raw {
		if e.AnsweredQuestions == nil {
			e.AnsweredQuestions = []domain.QuestionAnswer{}
		}
		e.IsGapLike = domain.IsGapLike(e.Outcome)
		entries[i] = e
	}
	return entries
}

func matches(e domain.HistoryEntry, f Filter) bool {
	if f.Keyword != "" && !strings.Contains(strings.ToLower(e.Details), strings.ToLower(f.Keyword)) {
		return false
	}
	if f.Submitter != "" && !strings.Contains(strings.ToLower(e.SubmitterName), strings.ToLower(f.Submitter)) {
		return false
	}
	if !f.From.IsZero() && e.Timestamp.Before(startOfDay(f.From)) {
		return false
	}
	if !f.To.IsZero() && !e.Timestamp.Before(startOfDay(f.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

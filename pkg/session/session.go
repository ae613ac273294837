package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/lexgap/internal/logging"
	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/graph"
	"github.com/aretw0/lexgap/pkg/ports"
)

// Phase identifies where the session currently is in the triage flow.
type Phase string

const (
	PhaseAnswering  Phase = "answering_questions"
	PhaseFinalizing Phase = "providing_details"
	PhaseComplete   Phase = "submission_complete"
)

// Session walks a decision graph, accumulating an ordered log of answered
// questions until a terminal outcome is reached and finalized into a
// durable HistoryEntry.
//
// A Session is single-owner and not safe for concurrent use.
type Session struct {
	graph  *graph.Graph
	store  ports.HistoryStore
	logger *slog.Logger

	now   func() time.Time
	newID func(time.Time) string

	log       []domain.QuestionAnswer
	pending   domain.Answer // "" when no answer is selected
	submitted bool
	notice    string // last validation message, cleared on new input
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets a structured logger for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock overrides the time source. Useful for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDGenerator overrides the entry ID construction.
func WithIDGenerator(newID func(time.Time) string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// New creates a fresh session positioned at the graph root.
func New(g *graph.Graph, store ports.HistoryStore, opts ...Option) *Session {
	s := &Session{
		graph:  g,
		store:  store,
		logger: logging.NewNop(),
		now:    time.Now,
		newID:  domain.NewEntryID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// position is the replayed walk state: either a node awaiting an answer, or
// a terminal outcome.
type position struct {
	node     domain.Node
	outcome  domain.Outcome
	terminal bool
}

// resolve replays the log from the root. The log is the single source of
// truth for "where we are"; nothing else tracks position.
func (s *Session) resolve() (position, error) {
	node := s.graph.Root()

	for i, entry := range s.log {
		if entry.QuestionID != node.ID {
			return position{}, &domain.ConfigurationError{
				NodeID: entry.QuestionID,
				Reason: fmt.Sprintf("log entry %d diverged from graph (expected node %q)", i, node.ID),
			}
		}

		edge, err := node.Edge(entry.Answer)
		if err != nil {
			return position{}, &domain.ConfigurationError{NodeID: node.ID, Reason: err.Error()}
		}
		if !edge.WellFormed() {
			return position{}, &domain.ConfigurationError{
				NodeID: node.ID,
				Reason: "edge carries neither next-node nor outcome",
			}
		}

		if edge.Terminal() {
			if i != len(s.log)-1 {
				return position{}, &domain.ConfigurationError{
					NodeID: node.ID,
					Reason: "log continues past a terminal edge",
				}
			}
			return position{outcome: edge.Outcome, terminal: true}, nil
		}

		next, err := s.graph.Get(edge.Next)
		if err != nil {
			return position{}, &domain.ConfigurationError{NodeID: node.ID, Reason: err.Error()}
		}
		node = next
	}

	return position{node: node}, nil
}

// Phase returns the current phase of the flow.
func (s *Session) Phase() Phase {
	if s.submitted {
		return PhaseComplete
	}
	pos, err := s.resolve()
	if err == nil && pos.terminal {
		return PhaseFinalizing
	}
	return PhaseAnswering
}

// Current returns the question node awaiting an answer. It fails when the
// session has already reached a terminal outcome.
func (s *Session) Current() (domain.Node, error) {
	pos, err := s.resolve()
	if err != nil {
		return domain.Node{}, err
	}
	if pos.terminal {
		return domain.Node{}, fmt.Errorf("no active question: session reached outcome %s", pos.outcome)
	}
	return pos.node, nil
}

// Outcome returns the terminal classification, if one has been reached.
func (s *Session) Outcome() (domain.Outcome, bool) {
	pos, err := s.resolve()
	if err != nil || !pos.terminal {
		return "", false
	}
	return pos.outcome, true
}

// Pending returns the not-yet-committed answer for the current question.
func (s *Session) Pending() (domain.Answer, bool) {
	return s.pending, s.pending != ""
}

// Log returns a copy of the ordered answer log.
func (s *Session) Log() []domain.QuestionAnswer {
	out := make([]domain.QuestionAnswer, len(s.log))
	copy(out, s.log)
	return out
}

// Notice returns the last validation message, or "" if none is pending.
func (s *Session) Notice() string {
	return s.notice
}

// SelectAnswer records the pending choice for the current question without
// advancing. Re-selecting simply overwrites the pending choice, and any
// previously shown validation message is cleared.
func (s *Session) SelectAnswer(a domain.Answer) error {
	s.notice = ""

	if !a.Valid() {
		return domain.NewValidationError("unrecognized answer %q", a)
	}
	if s.Phase() != PhaseAnswering {
		return domain.NewValidationError("no question is active")
	}

	s.pending = a
	return nil
}

// Advance commits the pending answer: the current question is appended to
// the log and the walk moves along the matching edge. Reaching a terminal
// edge moves the session into the finalizing phase.
func (s *Session) Advance() error {
	if s.Phase() != PhaseAnswering {
		return domain.NewValidationError("no question is active")
	}
	if s.pending == "" {
		return s.reject("no answer selected")
	}

	pos, err := s.resolve()
	if err != nil {
		return err
	}

	node := pos.node
	edge, err := node.Edge(s.pending)
	if err != nil {
		return &domain.ConfigurationError{NodeID: node.ID, Reason: err.Error()}
	}
	if !edge.WellFormed() {
		return &domain.ConfigurationError{
			NodeID: node.ID,
			Reason: "edge carries neither next-node nor outcome",
		}
	}
	if !edge.Terminal() {
		if _, err := s.graph.Get(edge.Next); err != nil {
			return &domain.ConfigurationError{NodeID: node.ID, Reason: err.Error()}
		}
	}

	s.log = append(s.log, domain.QuestionAnswer{
		QuestionID:   node.ID,
		QuestionText: node.Text,
		Answer:       s.pending,
	})
	answer := s.pending
	s.pending = ""

	if edge.Terminal() {
		s.logger.Debug("outcome reached", "node", node.ID, "answer", answer, "outcome", edge.Outcome)
	} else {
		s.logger.Debug("advanced", "node", node.ID, "answer", answer, "next", edge.Next)
	}
	return nil
}

// GoBack undoes the most recent answer. The popped entry's question becomes
// current again with its answer restored as the pending choice, so an
// Advance immediately followed by GoBack is an exact round trip. Calling it
// after an outcome (or a completed submission) discards that result and
// returns to answering.
func (s *Session) GoBack() error {
	if len(s.log) == 0 {
		return domain.ErrNothingToUndo
	}

	s.notice = ""
	last := s.log[len(s.log)-1]
	s.log = s.log[:len(s.log)-1]
	s.pending = last.Answer
	s.submitted = false

	s.logger.Debug("went back", "node", last.QuestionID)
	return nil
}

// FinalizeSubmission validates the user-supplied metadata, builds the
// HistoryEntry and prepends it to the durable list. Exactly one durable
// write happens per successful call; on store failure the session stays in
// the finalizing phase so the caller may retry or abandon.
func (s *Session) FinalizeSubmission(ctx context.Context, details, submitterName string) (domain.HistoryEntry, error) {
	switch s.Phase() {
	case PhaseComplete:
		return domain.HistoryEntry{}, domain.NewValidationError("submission already completed")
	case PhaseAnswering:
		return domain.HistoryEntry{}, domain.NewValidationError("no outcome reached yet")
	}

	if strings.TrimSpace(submitterName) == "" {
		return domain.HistoryEntry{}, s.reject("submitter name is required")
	}
	if strings.TrimSpace(details) == "" {
		return domain.HistoryEntry{}, s.reject("details are required")
	}

	outcome, ok := s.Outcome()
	if !ok {
		return domain.HistoryEntry{}, domain.NewValidationError("no outcome reached yet")
	}

	at := s.now()
	entry := domain.NewHistoryEntry(s.newID(at), at, s.log, outcome, details, submitterName)

	existing, err := s.store.Read(ctx)
	if err != nil {
		return domain.HistoryEntry{}, &domain.PersistenceError{Op: "read", Err: err}
	}

	updated := make([]domain.HistoryEntry, 0, len(existing)+1)
	updated = append(updated, entry)
	updated = append(updated, existing...)

	if err := s.store.Write(ctx, updated); err != nil {
		return domain.HistoryEntry{}, &domain.PersistenceError{Op: "write", Err: err}
	}

	s.submitted = true
	s.notice = ""
	s.logger.Info("analysis recorded", "id", entry.ID, "outcome", entry.Outcome, "questions", len(entry.AnsweredQuestions))
	return entry, nil
}

// Restart discards all in-memory walk state and returns the session to the
// root question. Already persisted entries are unaffected.
func (s *Session) Restart() {
	s.log = nil
	s.pending = ""
	s.submitted = false
	s.notice = ""
}

// reject records and returns a validation failure without touching state.
func (s *Session) reject(msg string) *domain.ValidationError {
	s.notice = msg
	return &domain.ValidationError{Msg: msg}
}

package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// QuestionAnswer is one entry in a session's ordered log. The question text
// is snapshotted at answering time so that later graph edits do not rewrite
// already recorded history.
type QuestionAnswer struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Answer       Answer `json:"answer"`
}

// HistoryEntry is one finalized classification record. Entries are created
// once at submission time, appended to the front of the durable list and
// never mutated afterwards.
//
// The JSON field names are the stable storage encoding; changing them breaks
// compatibility with previously written data.
type HistoryEntry struct {
	ID                string           `json:"id"`
	Timestamp         time.Time        `json:"timestamp"`
	AnsweredQuestions []QuestionAnswer `json:"answeredQuestions"`
	Outcome           Outcome          `json:"outcome"`
	IsGapLike         bool             `json:"isGapLike"`
	Details           string           `json:"details"`
	SubmitterName     string           `json:"submitterName"`
}

// NewHistoryEntry builds a finalized record from a session's log.
// The log is deep-copied so the entry stays independent of further session
// mutation. Details and submitter name are stored trimmed.
func NewHistoryEntry(id string, at time.Time, log []QuestionAnswer, outcome Outcome, details, submitterName string) HistoryEntry {
	copied := make([]QuestionAnswer, len(log))
	copy(copied, log)

	return HistoryEntry{
		ID:                id,
		Timestamp:         at,
		AnsweredQuestions: copied,
		Outcome:           outcome,
		IsGapLike:         IsGapLike(outcome),
		Details:           strings.TrimSpace(details),
		SubmitterName:     strings.TrimSpace(submitterName),
	}
}

// NewEntryID generates a client-side unique identifier: millisecond
// timestamp plus a random hex suffix, so two submissions in the same
// millisecond still get distinct IDs.
func NewEntryID(at time.Time) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d-%s", at.UnixMilli(), hex.EncodeToString(suffix))
}

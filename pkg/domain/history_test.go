package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewHistoryEntry(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	log := []QuestionAnswer{
		{QuestionID: "q1", QuestionText: "First?", Answer: AnswerYes},
	}

	entry := NewHistoryEntry("id-1", at, log, OutcomeBug, "  details  ", "  Joana  ")

	if entry.Details != "details" || entry.SubmitterName != "Joana" {
		t.Errorf("fields not trimmed: %q / %q", entry.Details, entry.SubmitterName)
	}
	if !entry.IsGapLike {
		t.Error("BUG must derive gap-like = true")
	}

	// The entry's log is a deep copy, independent of the source slice.
	log[0].Answer = AnswerNo
	if entry.AnsweredQuestions[0].Answer != AnswerYes {
		t.Error("entry log must be independent of the session log")
	}
}

func TestNewEntryID(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	a := NewEntryID(at)
	b := NewEntryID(at)

	if a == b {
		t.Errorf("same-millisecond IDs must differ: %s", a)
	}
	if !strings.HasPrefix(a, "1748772000000-") {
		t.Errorf("unexpected ID shape: %s", a)
	}
}

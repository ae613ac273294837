package domain

import "strings"

// Answer is a user's reply to a question node.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// Valid reports whether the answer is one of the two recognized values.
func (a Answer) Valid() bool {
	return a == AnswerYes || a == AnswerNo
}

// ParseAnswer normalizes raw user input into an Answer.
// It accepts the usual confirmation spellings (y/yes/true/1, n/no/false/0).
func ParseAnswer(raw string) (Answer, bool) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	switch clean {
	case "y", "yes", "true", "1":
		return AnswerYes, true
	case "n", "no", "false", "0":
		return AnswerNo, true
	}
	return "", false
}

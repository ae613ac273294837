package tui

import (
	"github.com/muesli/termenv"

	"github.com/aretw0/lexgap/pkg/domain"
)

// OutcomeDisplay carries the human-readable presentation of a terminal
// classification. This is presentation configuration keyed by the closed
// outcome set; the engine itself never branches on it.
type OutcomeDisplay struct {
	Title       string
	Description string
	Color       string // hex foreground color
	Advisory    string // extra note shown under the title, if any
}

var outcomeDisplays = map[domain.Outcome]OutcomeDisplay{
	domain.OutcomeGap: {
		Title:       "This is a legislation gap",
		Description: "The analysis indicates a high probability of a legislation gap. Fill in the details below for the record.",
		Color:       "#f59e0b",
		Advisory:    "Attention: take it to the daily to weigh priority against complexity.\nIf the business rule changes, remember to involve the PO.",
	},
	domain.OutcomeBug: {
		Title:       "This indicates a bug",
		Description: "The analysis indicates the request refers to a system bug that needs fixing. Fill in the details below for the record.",
		Color:       "#ef4444",
	},
	domain.OutcomeImprovement: {
		Title:       "Not a specific gap or bug",
		Description: "The analysis indicates the request can be handled as a business requirement, improvement or correction not classified as a gap or an evident technical bug. Fill in the details below for the record.",
		Color:       "#0ea5e9",
	},
}

// Display returns the presentation metadata for an outcome. Unknown tags
// (possible in history written by other versions) fall back to a neutral
// rendering.
func Display(o domain.Outcome) OutcomeDisplay {
	if d, ok := outcomeDisplays[o]; ok {
		return d
	}
	return OutcomeDisplay{
		Title:       "Unclassified",
		Description: "This entry carries an outcome tag this version does not recognize.",
		Color:       "#94a3b8",
	}
}

// Colorize renders text in the display color of the given outcome.
func Colorize(o domain.Outcome, text string) string {
	p := termenv.ColorProfile()
	return termenv.String(text).Foreground(p.Color(Display(o).Color)).Bold().String()
}

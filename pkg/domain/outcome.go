package domain

// Outcome is the terminal classification tag produced by the decision graph.
// The set is closed: a terminal edge is the only source of truth for it.
type Outcome string

const (
	// OutcomeGap marks the request as a legislation gap.
	OutcomeGap Outcome = "GAP"
	// OutcomeBug marks the request as a defect in existing behavior.
	OutcomeBug Outcome = "BUG"
	// OutcomeImprovement marks the request as a business requirement or
	// improvement, not a gap or an evident technical bug.
	OutcomeImprovement Outcome = "IMPROVEMENT"
)

// Valid reports whether the outcome belongs to the closed set.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeGap, OutcomeBug, OutcomeImprovement:
		return true
	}
	return false
}

// IsGapLike reports whether an outcome is treated as gap-like for triage
// purposes. It is a pure function of the outcome and the only way the
// gap-like flag may be computed; stored values are never trusted.
func IsGapLike(o Outcome) bool {
	return o == OutcomeGap || o == OutcomeBug
}

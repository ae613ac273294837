package tui

import (
	"testing"

	"github.com/aretw0/lexgap/pkg/domain"
)

func TestDisplay_CoversAllOutcomes(t *testing.T) {
	for _, o := range []domain.Outcome{domain.OutcomeGap, domain.OutcomeBug, domain.OutcomeImprovement} {
		d := Display(o)
		if d.Title == "" || d.Description == "" || d.Color == "" {
			t.Errorf("incomplete display metadata for %s: %+v", o, d)
		}
	}
}

func TestDisplay_UnknownOutcomeFallsBack(t *testing.T) {
	d := Display("SOMETHING_ELSE")
	if d.Title == "" {
		t.Error("unknown outcomes need a neutral fallback rendering")
	}
}

func TestDisplay_GapCarriesAdvisory(t *testing.T) {
	if Display(domain.OutcomeGap).Advisory == "" {
		t.Error("the gap outcome carries the daily/PO advisory note")
	}
	if Display(domain.OutcomeBug).Advisory != "" {
		t.Error("only the gap outcome carries an advisory")
	}
}

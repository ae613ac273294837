/*
Package lexgap is a deterministic decision-tree engine for triaging incoming
requests into a legislation gap, a bug, or a requirement/improvement.

It walks a static graph of yes/no question nodes, recording each answer in
an ordered log, supporting forward advancement and exact backward undo, and
finalizing the reached classification plus free-text details into a durable
local history.

# Concept

The log is the single source of truth for position: the current question is
always recomputed by replaying the log from the root, so advance and go-back
stay symmetric and the walk is reproducible by construction. The engine is
decoupled from presentation and storage through a Hexagonal Architecture:
the host owns rendering and input, a HistoryStore port owns persistence.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/lexgap"
		"github.com/aretw0/lexgap/pkg/domain"
	)

	func main() {
		triage := lexgap.New()
		sess := triage.NewSession()

		// Answer the root question: the norm is not yet in force.
		if err := sess.SelectAnswer(domain.AnswerNo); err != nil {
			log.Fatal(err)
		}
		if err := sess.Advance(); err != nil {
			log.Fatal(err)
		}

		outcome, _ := sess.Outcome() // GAP

		entry, err := sess.FinalizeSubmission(context.Background(),
			"New TISS version, see ticket ABC-123.", "Joana")
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("recorded %s as %s", entry.ID, outcome)
	}
*/
package lexgap

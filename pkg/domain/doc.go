/*
Package domain contains the core domain models for the lexgap triage engine.

It defines the fundamental entities of the decision walk, such as question
Nodes, their yes/no Edges, the closed set of terminal Outcomes, and the
HistoryEntry records produced by a finalized session. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Node: a single yes/no question plus its two outgoing edges.
  - Edge: either a pointer to another node or a terminal outcome.
  - QuestionAnswer: one answered question in a session's ordered log.
  - HistoryEntry: one durably persisted, finalized classification record.
*/
package domain

/*
Package session implements the traversal state machine that walks a decision
graph one yes/no question at a time.

A Session moves through three phases: Answering (a question is on screen),
Finalizing (a terminal outcome was reached and details are being collected)
and Complete (the record was durably written). The ordered answer log is the
single source of truth for position: the current node is recomputed by
replaying the log from the root, which makes Advance and GoBack symmetric by
construction and rules out divergence between a separately tracked position
and the log.
*/
package session

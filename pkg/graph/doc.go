/*
Package graph holds the static decision graph: an immutable mapping from
node ID to question node plus a designated root.

Graphs are validated at construction time (dangling edges, malformed edges,
cycles reachable from the root), so a successfully built Graph is guaranteed
to terminate every walk within at most one visit per node. Configuration
problems are therefore startup errors, never mid-session surprises.
*/
package graph

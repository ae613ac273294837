/*
Package history is the read side over persisted classification records.

It loads the durable list, tolerates entries written by earlier schema
versions, recomputes derived fields instead of trusting stored values, and
applies ANDed filters with a stable most-recent-first ordering.
*/
package history

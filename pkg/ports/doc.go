/*
Package ports defines the driven ports (interfaces) for the lexgap engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various storage backends.

# Key Interfaces

  - HistoryStore: Responsible for persisting and loading the durable list of
    finalized HistoryEntry records.
*/
package ports

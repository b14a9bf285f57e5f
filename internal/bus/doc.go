// Package bus implements the queue operations on top of the event store:
// publish (plain and dedup-aware), check, read, ack, ack-all, prune, and
// status. Input validation and the ordering, deduplication, and retention
// invariants live here; the primitive atomic file operations live in
// internal/store.
//
// The bus is stateless between calls. Independent processes coordinate
// purely through the shared events directory, so every operation is
// written to tolerate another process mutating the directory concurrently:
// a file that vanishes between a scan and the action taken on it surfaces
// as store.ErrNotFound, an expected outcome rather than a bug.
package bus

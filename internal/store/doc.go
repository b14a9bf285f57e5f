// Package store owns the on-disk representation of the event queue.
//
// Layout:
//
//	<events_dir>/*.event            pending events
//	<events_dir>/processed/*.event  acknowledged events
//	<events_dir>/config.yaml        optional configuration (internal/config)
//
// One file per event, plain text, immutable content:
//
//	source: <source>
//	type: <type>
//	priority: <critical|high|normal|low>
//	timestamp: <ISO 8601 UTC>
//	dedup-key: <source>:<type>
//	payload: |
//	  <indented lines, optional>
//
// # Atomicity
//
// Every mutation rides on the filesystem's atomic rename:
//
//   - CreatePending writes to a uniquely named temp file and renames it
//     into place. A concurrent reader never observes a partial event.
//   - Acknowledge renames the file into processed/. At any instant the
//     file is in exactly one directory, never both, never neither.
//
// No locks are held and no daemon exists; any number of processes may
// publish, scan, acknowledge, and prune the same directory concurrently.
// A scan is a point-in-time snapshot: files listed by it may already have
// been acknowledged or pruned by another process, and callers must treat
// a subsequent not-found as an ordinary outcome.
package store

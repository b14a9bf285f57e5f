// Package event defines the value types shared by the store and bus layers:
// priorities, validated bare filenames, and the in-memory Event record.
//
// An Event is immutable once created. The only state transition it ever
// undergoes is a change of location on disk (pending -> processed/ ->
// deleted), never a change of content. The types here carry no behaviour
// that touches the filesystem; that belongs to internal/store.
package event

package bus

import (
	"fmt"
	"time"

	"github.com/roach88/filebus/internal/event"
)

// Publish validates the inputs and creates a new pending event, returning
// the filename of the created file.
func (b *Bus) Publish(source, eventType string, p event.Priority, payload string) (event.Filename, error) {
	source, err := normalizeHandle("source", source)
	if err != nil {
		return "", err
	}
	eventType, err = normalizeHandle("type", eventType)
	if err != nil {
		return "", err
	}
	if !p.Valid() {
		return "", fmt.Errorf("%w: invalid priority %d", ErrInvalidArgument, p)
	}
	return b.store.CreatePending(source, eventType, p, payload)
}

// PublishDedup publishes unless a pending event with the same dedup key
// (source:type) already exists with a timestamp inside [now-window, now].
// A suppressed publish returns deduplicated=true with no error and no
// file created: a successful-but-suppressed outcome, not a failure.
// A window <= 0 disables the check.
//
// The check-then-create sequence is not atomic: two processes publishing
// the same key in the same instant may both create events. Deduplication
// is a best-effort noise reducer, not a correctness mechanism.
func (b *Bus) PublishDedup(source, eventType string, p event.Priority, payload string, window time.Duration) (name event.Filename, deduplicated bool, err error) {
	if window <= 0 {
		name, err = b.Publish(source, eventType, p, payload)
		return name, false, err
	}

	// Validate before scanning so a bad handle is rejected identically on
	// both publish paths.
	source, err = normalizeHandle("source", source)
	if err != nil {
		return "", false, err
	}
	eventType, err = normalizeHandle("type", eventType)
	if err != nil {
		return "", false, err
	}
	if !p.Valid() {
		return "", false, fmt.Errorf("%w: invalid priority %d", ErrInvalidArgument, p)
	}

	key := source + ":" + eventType
	cutoff := b.store.Now().Add(-window)

	events, err := b.store.Scan()
	if err != nil {
		return "", false, err
	}
	for _, ev := range events {
		if ev.Timestamp.Before(cutoff) {
			continue
		}
		if ev.DedupKey() == key {
			return "", true, nil
		}
	}

	name, err = b.store.CreatePending(source, eventType, p, payload)
	return name, false, err
}

package bus

import (
	"errors"
	"log/slog"

	"github.com/roach88/filebus/internal/store"
)

// Ack acknowledges one event: an atomic move from pending into
// processed/. Acknowledging an already-acknowledged (or never-published)
// event fails with store.ErrNotFound.
func (b *Bus) Ack(name string) error {
	fn, err := parseName(name)
	if err != nil {
		return err
	}
	return b.store.Acknowledge(fn)
}

// AckAll acknowledges every pending event, optionally filtered by source
// handle, and returns the number successfully moved. A failed move never
// stops the sweep: an event that vanished between the scan and its move
// (another consumer got there first) is silently skipped, any other
// failure is logged and skipped, and the count covers successes only.
func (b *Bus) AckAll(handle string) (int, error) {
	events, err := b.Check(handle)
	if err != nil {
		return 0, err
	}

	acked := 0
	for _, ev := range events {
		if err := b.store.Acknowledge(ev.Name); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				slog.Warn("failed to acknowledge event", "file", ev.Name, "error", err)
			}
			continue
		}
		acked++
	}
	return acked, nil
}

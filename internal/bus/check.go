package bus

import (
	"sort"
	"time"

	"github.com/roach88/filebus/internal/event"
)

// Check lists pending events in delivery order: priority ascending
// (critical first), then timestamp ascending (oldest first). The sort is
// stable, so same-priority same-microsecond events keep a deterministic
// relative order. A non-empty handle filters to events from that source.
//
// The listing is a snapshot. By the time the caller reads or acknowledges
// a listed event, another process may already have taken it; a not-found
// on the follow-up call is expected, not an error in the listing.
func (b *Bus) Check(handle string) ([]event.Event, error) {
	events, err := b.store.Scan()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Priority != events[j].Priority {
			return events[i].Priority < events[j].Priority
		}
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	if handle == "" {
		return events, nil
	}
	filtered := events[:0]
	for _, ev := range events {
		if ev.Source == handle {
			filtered = append(filtered, ev)
		}
	}
	return filtered, nil
}

// Read returns the exact bytes of one pending event file. The name passes
// the traversal guard before any path is built.
func (b *Bus) Read(name string) ([]byte, error) {
	fn, err := parseName(name)
	if err != nil {
		return nil, err
	}
	return b.store.ReadRaw(fn)
}

// Now exposes the bus's wall clock so the CLI renders event ages against
// the same clock that stamped them.
func (b *Bus) Now() time.Time {
	return b.store.Now()
}

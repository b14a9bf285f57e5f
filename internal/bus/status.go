package bus

import (
	"time"

	"github.com/roach88/filebus/internal/event"
)

// Status summarises the state of the queue at one instant. Everything in
// it is advisory; producing a Status never mutates the directory.
type Status struct {
	Pending       int
	ByPriority    [4]int    // indexed by event.Priority
	OldestPending time.Time // zero when no events are pending

	ProcessedCount int
	ProcessedBytes int64

	// Stale counts pending events older than AckTimeout. Zero AckTimeout
	// disables the check.
	Stale      int
	AckTimeout time.Duration
}

// Status aggregates pending and processed state: counts broken out by
// priority, the oldest pending timestamp, the size of processed/, and,
// when an ack timeout is configured, how many pending events have
// outlived it.
func (b *Bus) Status() (Status, error) {
	events, err := b.store.Scan()
	if err != nil {
		return Status{}, err
	}

	st := Status{Pending: len(events), AckTimeout: b.cfg.AckTimeout}
	for _, ev := range events {
		p := ev.Priority
		if !p.Valid() {
			p = event.PriorityNormal
		}
		st.ByPriority[p]++
		if st.OldestPending.IsZero() || ev.Timestamp.Before(st.OldestPending) {
			st.OldestPending = ev.Timestamp
		}
	}

	processed, err := b.store.ScanProcessed()
	if err != nil {
		return Status{}, err
	}
	st.ProcessedCount = len(processed)
	for _, e := range processed {
		st.ProcessedBytes += e.Size
	}

	if b.cfg.AckTimeout > 0 {
		deadline := b.store.Now().Add(-b.cfg.AckTimeout)
		for _, ev := range events {
			if ev.Timestamp.Before(deadline) {
				st.Stale++
			}
		}
	}
	return st, nil
}

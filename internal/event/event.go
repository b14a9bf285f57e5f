package event

import (
	"fmt"
	"time"
)

// Event is the in-memory view of one event file. Name and Timestamp come
// from the filename; Source, Type, and Priority come from the file
// content, which is authoritative (source and type may contain '-', so
// they cannot be recovered from the filename reliably).
type Event struct {
	Name      Filename
	Source    string
	Type      string
	Priority  Priority
	Timestamp time.Time
}

// DedupKey returns the "source:type" pair used by dedup-aware publishing
// to suppress near-duplicate events within a time window.
func (e Event) DedupKey() string {
	return e.Source + ":" + e.Type
}

// FormatAge renders an elapsed duration as a coarse human-readable age:
// "45s ago", "3m ago", "2h ago", "5d ago". Negative durations (clock skew
// between writer and reader) clamp to "0s ago".
func FormatAge(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	default:
		return fmt.Sprintf("%dd ago", seconds/86400)
	}
}

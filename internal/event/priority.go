package event

import "fmt"

// Priority is the urgency level of an event. Lower values sort first:
// critical(0), high(1), normal(2), low(3). The zero value is
// PriorityCritical, so callers constructing events by hand should always
// set it explicitly.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityNormal
	PriorityLow
)

var priorityNames = [...]string{"critical", "high", "normal", "low"}

// ParsePriority parses a priority label ("critical", "high", "normal",
// "low") into a Priority. Unrecognised labels are an error.
func ParsePriority(s string) (Priority, error) {
	for i, name := range priorityNames {
		if s == name {
			return Priority(i), nil
		}
	}
	return 0, fmt.Errorf("invalid priority %q (use: critical, high, normal, low)", s)
}

// Valid reports whether p is one of the four defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityCritical && p <= PriorityLow
}

// String returns the canonical label for p, or "invalid" for
// out-of-range values.
func (p Priority) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return priorityNames[p]
}

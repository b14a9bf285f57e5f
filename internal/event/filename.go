package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Suffix is the filename extension every event file carries.
const Suffix = ".event"

// ErrInvalidFilename is returned when a caller-supplied filename is empty,
// contains a path separator, or is "..". Matching with errors.Is lets the
// CLI map these to the bad-arguments exit code.
var ErrInvalidFilename = errors.New("invalid event filename")

// Filename is a validated bare event filename: no path separators, not
// "..". Construct one only through ParseFilename or Compose; every
// store operation that takes a Filename may then join it under the events
// directory without re-checking for traversal.
type Filename string

// ParseFilename validates a caller-supplied name. This is the single
// traversal guard for the whole module: read, ack, and prune all funnel
// caller input through here before any path is built.
func ParseFilename(name string) (Filename, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidFilename)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidFilename, name)
	}
	if name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return Filename(name), nil
}

// Compose builds the canonical filename for a new event:
//
//	<timestamp-microseconds>-<source>-<type>-<pid>.event
//
// The leading timestamp is the sort and prune key; the rest is
// informational (content is authoritative for source and type, since both
// may themselves contain '-').
func Compose(ts time.Time, source, eventType string, pid int) Filename {
	return Filename(fmt.Sprintf("%d-%s-%s-%d%s", ts.UnixMicro(), source, eventType, pid, Suffix))
}

func (f Filename) String() string { return string(f) }

// IsEvent reports whether f carries the event-file suffix with a non-empty
// stem. Scans use this to skip foreign files.
func (f Filename) IsEvent() bool {
	return len(f) > len(Suffix) && strings.HasSuffix(string(f), Suffix)
}

// Timestamp extracts the leading microsecond timestamp. Filenames whose
// leading component is absent or not all-digits are an error; scans treat
// that as a malformed file and skip it.
func (f Filename) Timestamp() (time.Time, error) {
	name := string(f)
	dash := strings.IndexByte(name, '-')
	if dash <= 0 {
		return time.Time{}, fmt.Errorf("filename %q: no timestamp component", name)
	}
	// All digits, no sign: ParseInt alone would admit a leading '+'.
	for i := 0; i < dash; i++ {
		if name[i] < '0' || name[i] > '9' {
			return time.Time{}, fmt.Errorf("filename %q: bad timestamp", name)
		}
	}
	us, err := strconv.ParseInt(name[:dash], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("filename %q: bad timestamp: %w", name, err)
	}
	return time.UnixMicro(us).UTC(), nil
}

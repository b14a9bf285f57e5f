package store

import (
	"fmt"
	"os"
	"time"

	"github.com/roach88/filebus/internal/event"
)

// Scan returns a point-in-time listing of pending events, unsorted.
//
// Only regular files carrying the .event suffix and a parseable leading
// timestamp are considered; the priority, source, and type come from the
// file content. A file that fails to parse (corrupt, foreign, or
// mid-prune) degrades the listing, it never aborts it.
func (s *Store) Scan() ([]event.Event, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, s.dir)
		}
		return nil, fmt.Errorf("scan events directory: %w", err)
	}

	var events []event.Event
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue // processed/ and anything else odd
		}
		name := event.Filename(entry.Name())
		if !name.IsEvent() {
			continue
		}
		ts, err := name.Timestamp()
		if err != nil {
			continue // malformed filename
		}
		data, err := os.ReadFile(s.pendingPath(name))
		if err != nil {
			continue // vanished or unreadable between list and read
		}
		doc, p, err := parseEventContent(data)
		if err != nil {
			continue // corrupt content
		}
		events = append(events, event.Event{
			Name:      name,
			Source:    doc.Source,
			Type:      doc.Type,
			Priority:  p,
			Timestamp: ts,
		})
	}
	return events, nil
}

// ProcessedEntry describes one acknowledged event file, as much of it as
// prune and status need: name, embedded timestamp, size on disk.
type ProcessedEntry struct {
	Name      event.Filename
	Timestamp time.Time
	Size      int64
}

// ScanProcessed lists acknowledged events. A missing processed/
// directory simply means nothing has been acknowledged yet.
func (s *Store) ScanProcessed() ([]ProcessedEntry, error) {
	entries, err := os.ReadDir(s.processedDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan processed directory: %w", err)
	}

	var processed []ProcessedEntry
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := event.Filename(entry.Name())
		if !name.IsEvent() {
			continue
		}
		ts, err := name.Timestamp()
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // deleted between list and stat
		}
		processed = append(processed, ProcessedEntry{
			Name:      name,
			Timestamp: ts,
			Size:      info.Size(),
		})
	}
	return processed, nil
}

// ReadRaw returns the exact bytes of a pending event file, with no
// transformation or parsing. Returns an error matching ErrNotFound when
// the file does not exist.
func (s *Store) ReadRaw(name event.Filename) ([]byte, error) {
	data, err := os.ReadFile(s.pendingPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("read event %s: %w", name, err)
	}
	return data, nil
}

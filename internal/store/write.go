package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/roach88/filebus/internal/event"
)

// CreatePending atomically creates a new pending event file and returns
// its filename.
//
// The content is written to a uniquely named temp file in the events
// directory (same filesystem, so the final rename is atomic) and renamed
// into place. On any failure after the temp file exists it is removed
// before returning, so the happy-failure path leaves no partial or
// orphaned files behind.
//
// Validation of source, type, and priority belongs to the bus layer;
// CreatePending assumes its inputs are already validated.
func (s *Store) CreatePending(source, eventType string, p event.Priority, payload string) (event.Filename, error) {
	if err := s.ensureProcessed(); err != nil {
		return "", err
	}

	ts := s.nextTimestamp()
	name := event.Compose(ts, source, eventType, s.pid)
	content := encodeEvent(source, eventType, p, ts, payload)

	// uuid in the temp name guards against two goroutines in this process
	// colliding on the same temp path.
	tmp := filepath.Join(s.dir, ".tmp-"+uuid.NewString()+event.Suffix)
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		s.discardTemp(tmp)
		return "", fmt.Errorf("write event file: %w", err)
	}

	if err := os.Rename(tmp, s.pendingPath(name)); err != nil {
		s.discardTemp(tmp)
		return "", fmt.Errorf("finalise event file: %w", err)
	}
	return name, nil
}

// discardTemp rolls back a temp file after a failed publish. Failure to
// remove it is only worth a warning: the orphan carries no leading
// timestamp so every scan skips it, and the publish error itself is what
// propagates.
func (s *Store) discardTemp(tmp string) {
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove temp event file", "path", tmp, "error", err)
	}
}

// Acknowledge moves a pending event into processed/, atomically. The
// processed/ directory is created if absent. Returns an error matching
// ErrNotFound when the pending file does not exist: either it was never
// published or another process already acknowledged it.
func (s *Store) Acknowledge(name event.Filename) error {
	if err := s.ensureProcessed(); err != nil {
		return err
	}

	src := s.pendingPath(name)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := os.Rename(src, s.processedPath(name)); err != nil {
		// Lost the race: acknowledged by another process between the stat
		// and the rename.
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("acknowledge %s: %w", name, err)
	}
	return nil
}

// RemoveProcessed deletes one acknowledged event file. Pruning is the
// only caller; pending events are never deleted, only moved.
func (s *Store) RemoveProcessed(name event.Filename) error {
	if err := s.remove(s.processedPath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("remove processed event %s: %w", name, err)
	}
	return nil
}

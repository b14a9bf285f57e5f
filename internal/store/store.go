package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/roach88/filebus/internal/event"
)

// ProcessedDirName is the subdirectory acknowledged events move into.
const ProcessedDirName = "processed"

var (
	// ErrDirNotFound means the events directory is missing or not a
	// directory. Reported distinctly from generic errors so callers can
	// tell "nothing to do yet" from "something is broken".
	ErrDirNotFound = errors.New("events directory not found")

	// ErrNotFound means a named event file does not exist. Between a scan
	// and a later read or acknowledge another process may have moved or
	// pruned the file, so callers must treat this as an ordinary outcome.
	ErrNotFound = errors.New("event not found")
)

// Store binds the primitive event-file operations to one events
// directory. It holds no open handles and no locks; every method is a
// bounded, synchronous unit of filesystem work, safe for concurrent use
// from any number of goroutines or processes.
type Store struct {
	dir    string
	pid    int
	now    func() time.Time
	remove func(string) error

	// lastUS is the most recent microsecond timestamp issued by this
	// process. Publishes issue max(now, last+1), so two goroutines
	// publishing the same source/type within one microsecond still get
	// distinct filenames (the PID component only disambiguates across
	// processes).
	lastUS atomic.Int64
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the wall clock, for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRemove overrides the file removal used by RemoveProcessed, for
// fault-injection tests of the prune path.
func WithRemove(remove func(string) error) Option {
	return func(s *Store) { s.remove = remove }
}

// Open binds a Store to an existing events directory. The directory must
// already exist; Open never creates it (the caller owns that decision).
// Returns an error matching ErrDirNotFound when the path is missing or is
// not a directory.
func Open(dir string, opts ...Option) (*Store, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrDirNotFound, dir)
	}

	s := &Store{
		dir:    dir,
		pid:    os.Getpid(),
		now:    time.Now,
		remove: os.Remove,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the events directory this store is bound to.
func (s *Store) Dir() string {
	return s.dir
}

// Now returns the store's current wall-clock time. Bus operations use it
// so that dedup windows and age rendering agree with the timestamps the
// store stamps onto filenames.
func (s *Store) Now() time.Time {
	return s.now()
}

// nextTimestamp issues a strictly increasing microsecond timestamp for
// this process. Lock-free: a CAS loop over the last issued value.
func (s *Store) nextTimestamp() time.Time {
	for {
		last := s.lastUS.Load()
		us := s.now().UnixMicro()
		if us <= last {
			us = last + 1
		}
		if s.lastUS.CompareAndSwap(last, us) {
			return time.UnixMicro(us).UTC()
		}
	}
}

// processedDir returns the path of the processed/ subdirectory.
func (s *Store) processedDir() string {
	return filepath.Join(s.dir, ProcessedDirName)
}

// ensureProcessed creates the processed/ subdirectory if absent.
// Idempotent; called by both the publish and acknowledge paths.
func (s *Store) ensureProcessed() error {
	if err := os.MkdirAll(s.processedDir(), 0o755); err != nil {
		return fmt.Errorf("create processed directory: %w", err)
	}
	return nil
}

// pendingPath joins a validated filename under the events directory.
func (s *Store) pendingPath(name event.Filename) string {
	return filepath.Join(s.dir, name.String())
}

// processedPath joins a validated filename under processed/.
func (s *Store) processedPath(name event.Filename) string {
	return filepath.Join(s.processedDir(), name.String())
}

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/filebus/internal/testutil"
)

// newTestStore opens a store over a fresh temp directory with a frozen
// clock.
func newTestStore(t *testing.T) (*Store, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	s, err := Open(t.TempDir(), WithNow(clock.Now))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s, clock
}

// removeAll deletes a path, failing the test on error.
func removeAll(t *testing.T, path string) {
	t.Helper()
	if err := os.RemoveAll(path); err != nil {
		t.Fatalf("remove %s: %v", path, err)
	}
}

// writeRawEvent drops a hand-written file into the events directory,
// bypassing the publish path. Used to simulate foreign and corrupt files.
func writeRawEvent(t *testing.T, s *Store, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(s.Dir(), name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

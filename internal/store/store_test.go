package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrDirNotFound) {
		t.Errorf("Open() on missing dir = %v, want ErrDirNotFound", err)
	}
}

func TestOpen_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path)
	if !errors.Is(err, ErrDirNotFound) {
		t.Errorf("Open() on regular file = %v, want ErrDirNotFound", err)
	}
}

func TestOpen_DoesNotCreateProcessed(t *testing.T) {
	// Open is read-only; processed/ appears on first publish or ack.
	dir := t.TempDir()
	if _, err := Open(dir); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ProcessedDirName)); !os.IsNotExist(err) {
		t.Error("Open() should not create processed/")
	}
}

func TestNextTimestamp_StrictlyIncreasing(t *testing.T) {
	// With a frozen wall clock every issued timestamp must still be
	// unique: same-microsecond publishes from one process may not collide.
	s, _ := newTestStore(t)

	const n = 100
	seen := make(map[int64]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			us := s.nextTimestamp().UnixMicro()
			mu.Lock()
			seen[us] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("issued %d distinct timestamps, want %d", len(seen), n)
	}
}

func TestNextTimestamp_FollowsClock(t *testing.T) {
	s, clock := newTestStore(t)

	first := s.nextTimestamp()
	clock.Advance(time.Second)
	second := s.nextTimestamp()

	if got := second.Sub(first); got != time.Second {
		t.Errorf("timestamp advanced by %v, want %v", got, time.Second)
	}
}

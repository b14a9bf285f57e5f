package bus

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/filebus/internal/config"
	"github.com/roach88/filebus/internal/event"
	"github.com/roach88/filebus/internal/store"
)

// ErrInvalidArgument is returned for validation failures: empty or
// whitespace-containing source/type, an out-of-range priority, or a
// filename that fails the traversal guard. Validation happens before any
// I/O, so a rejected call is never partially applied.
var ErrInvalidArgument = errors.New("invalid argument")

// Bus exposes the queue operations over one events directory.
type Bus struct {
	store *store.Store
	cfg   config.Config
}

// New builds a Bus over an opened store.
func New(st *store.Store, cfg config.Config) *Bus {
	return &Bus{store: st, cfg: cfg}
}

// Config returns the configuration the bus was built with.
func (b *Bus) Config() config.Config {
	return b.cfg
}

// normalizeHandle NFC-normalizes and validates a source or type handle:
// non-empty, no whitespace. Normalization keeps byte-level comparisons
// (dedup keys, handle filters) stable across producers that encode the
// same handle differently.
func normalizeHandle(kind, s string) (string, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, kind)
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return "", fmt.Errorf("%w: %s must not contain whitespace", ErrInvalidArgument, kind)
		}
	}
	return s, nil
}

// parseName applies the traversal guard to a caller-supplied filename.
func parseName(name string) (event.Filename, error) {
	fn, err := event.ParseFilename(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return fn, nil
}

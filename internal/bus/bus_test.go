package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/filebus/internal/config"
	"github.com/roach88/filebus/internal/store"
	"github.com/roach88/filebus/internal/testutil"
)

// newTestBus builds a bus over a fresh temp directory with a frozen clock
// and default configuration.
func newTestBus(t *testing.T) (*Bus, *testutil.Clock) {
	t.Helper()
	return newTestBusWithConfig(t, config.Default())
}

func newTestBusWithConfig(t *testing.T, cfg config.Config) (*Bus, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	st, err := store.Open(t.TempDir(), store.WithNow(clock.Now))
	require.NoError(t, err)
	return New(st, cfg), clock
}

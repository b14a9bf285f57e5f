package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/filebus/internal/config"
	"github.com/roach88/filebus/internal/event"
)

func TestStatus_Empty(t *testing.T) {
	b, _ := newTestBus(t)

	st, err := b.Status()
	require.NoError(t, err)
	assert.Zero(t, st.Pending)
	assert.True(t, st.OldestPending.IsZero())
	assert.Zero(t, st.ProcessedCount)
	assert.Zero(t, st.ProcessedBytes)
	assert.Zero(t, st.Stale)
}

func TestStatus_CountsByPriority(t *testing.T) {
	b, clock := newTestBus(t)

	oldest := clock.Now()
	for _, p := range []event.Priority{
		event.PriorityCritical,
		event.PriorityHigh,
		event.PriorityHigh,
		event.PriorityNormal,
		event.PriorityLow,
	} {
		_, err := b.Publish("src", "tick", p, "")
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	st, err := b.Status()
	require.NoError(t, err)
	assert.Equal(t, 5, st.Pending)
	assert.Equal(t, 1, st.ByPriority[event.PriorityCritical])
	assert.Equal(t, 2, st.ByPriority[event.PriorityHigh])
	assert.Equal(t, 1, st.ByPriority[event.PriorityNormal])
	assert.Equal(t, 1, st.ByPriority[event.PriorityLow])
	assert.True(t, st.OldestPending.Equal(oldest), "oldest pending = %v, want %v", st.OldestPending, oldest)
}

func TestStatus_ProcessedTotals(t *testing.T) {
	b, clock := newTestBus(t)

	for i := 0; i < 3; i++ {
		name, err := b.Publish("src", "tick", event.PriorityNormal, "payload body")
		require.NoError(t, err)
		require.NoError(t, b.Ack(name.String()))
		clock.Advance(time.Second)
	}

	st, err := b.Status()
	require.NoError(t, err)
	assert.Zero(t, st.Pending)
	assert.Equal(t, 3, st.ProcessedCount)
	assert.Positive(t, st.ProcessedBytes)
}

func TestStatus_StaleWarning(t *testing.T) {
	cfg := config.Default()
	cfg.AckTimeout = 5 * time.Minute
	b, clock := newTestBusWithConfig(t, cfg)

	_, err := b.Publish("src", "old", event.PriorityNormal, "")
	require.NoError(t, err)
	clock.Advance(10 * time.Minute)
	_, err = b.Publish("src", "fresh", event.PriorityNormal, "")
	require.NoError(t, err)

	st, err := b.Status()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Pending)
	assert.Equal(t, 1, st.Stale, "only the event older than the timeout is stale")
}

func TestStatus_StaleDisabledByZeroTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.AckTimeout = 0
	b, clock := newTestBusWithConfig(t, cfg)

	_, err := b.Publish("src", "old", event.PriorityNormal, "")
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)

	st, err := b.Status()
	require.NoError(t, err)
	assert.Zero(t, st.Stale)
}

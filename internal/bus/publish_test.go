package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/filebus/internal/event"
)

func TestPublish_RoundTrip(t *testing.T) {
	b, _ := newTestBus(t)

	name, err := b.Publish("scribe", "checkpoint", event.PriorityHigh, "20 decisions logged")
	require.NoError(t, err)

	data, err := b.Read(name.String())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "source: scribe\n")
	assert.Contains(t, content, "type: checkpoint\n")
	assert.Contains(t, content, "priority: high\n")
	assert.Contains(t, content, "dedup-key: scribe:checkpoint\n")
	assert.Contains(t, content, "20 decisions logged")
}

func TestPublish_Validation(t *testing.T) {
	b, _ := newTestBus(t)

	tests := []struct {
		name      string
		source    string
		eventType string
		priority  event.Priority
	}{
		{"empty source", "", "type", event.PriorityNormal},
		{"whitespace in source", "my source", "type", event.PriorityNormal},
		{"tab in source", "my\tsource", "type", event.PriorityNormal},
		{"empty type", "source", "", event.PriorityNormal},
		{"whitespace in type", "source", "my type", event.PriorityNormal},
		{"priority below range", "source", "type", event.Priority(-1)},
		{"priority above range", "source", "type", event.Priority(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Publish(tt.source, tt.eventType, tt.priority, "")
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	// Rejected before any I/O: nothing may have been created.
	events, err := b.Check("")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPublishDedup_SuppressesWithinWindow(t *testing.T) {
	b, clock := newTestBus(t)

	name, deduplicated, err := b.PublishDedup("parser", "task-complete", event.PriorityNormal, "", 60*time.Second)
	require.NoError(t, err)
	assert.False(t, deduplicated)
	assert.NotEmpty(t, name)

	clock.Advance(30 * time.Second)
	name, deduplicated, err = b.PublishDedup("parser", "task-complete", event.PriorityNormal, "", 60*time.Second)
	require.NoError(t, err)
	assert.True(t, deduplicated, "publish inside the window should be suppressed")
	assert.Empty(t, name)

	events, err := b.Check("")
	require.NoError(t, err)
	assert.Len(t, events, 1, "suppressed publish must not create a file")
}

func TestPublishDedup_ExpiresAfterWindow(t *testing.T) {
	b, clock := newTestBus(t)

	_, _, err := b.PublishDedup("parser", "task-complete", event.PriorityNormal, "", 60*time.Second)
	require.NoError(t, err)

	clock.Advance(61 * time.Second)
	_, deduplicated, err := b.PublishDedup("parser", "task-complete", event.PriorityNormal, "", 60*time.Second)
	require.NoError(t, err)
	assert.False(t, deduplicated, "window elapsed, publish should go through")

	events, err := b.Check("")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestPublishDedup_DifferentKeysDoNotSuppress(t *testing.T) {
	b, _ := newTestBus(t)

	_, _, err := b.PublishDedup("parser", "started", event.PriorityNormal, "", time.Minute)
	require.NoError(t, err)
	_, deduplicated, err := b.PublishDedup("parser", "finished", event.PriorityNormal, "", time.Minute)
	require.NoError(t, err)
	assert.False(t, deduplicated)
	_, deduplicated, err = b.PublishDedup("other", "started", event.PriorityNormal, "", time.Minute)
	require.NoError(t, err)
	assert.False(t, deduplicated)
}

func TestPublishDedup_AcknowledgedEventsDoNotSuppress(t *testing.T) {
	// Dedup scans pending only; an acked event is no longer noise worth
	// suppressing against.
	b, _ := newTestBus(t)

	name, _, err := b.PublishDedup("parser", "done", event.PriorityNormal, "", time.Minute)
	require.NoError(t, err)
	require.NoError(t, b.Ack(name.String()))

	_, deduplicated, err := b.PublishDedup("parser", "done", event.PriorityNormal, "", time.Minute)
	require.NoError(t, err)
	assert.False(t, deduplicated)
}

func TestPublishDedup_ZeroWindowDisables(t *testing.T) {
	b, _ := newTestBus(t)

	for i := 0; i < 3; i++ {
		_, deduplicated, err := b.PublishDedup("parser", "tick", event.PriorityNormal, "", 0)
		require.NoError(t, err)
		assert.False(t, deduplicated)
	}

	events, err := b.Check("")
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPublishDrainRoundTrips(t *testing.T) {
	h := NewHub()
	id := h.Open()

	h.Publish(id, Event{Status: "pending", Data: map[string]string{"script_path": "/a.ts"}})
	h.Close(id)

	frames, ok := h.Drain(id)
	require.True(t, ok)
	require.Len(t, frames, 1)
	assert.True(t, strings.HasPrefix(frames[0], "event: message\ndata: "))
	assert.Contains(t, frames[0], `"status":"pending"`)
	assert.Contains(t, frames[0], "/a.ts")
}

func TestDrainUnknownCallIDFails(t *testing.T) {
	h := NewHub()
	_, ok := h.Drain("does-not-exist")
	assert.False(t, ok)
}

func TestDrainIsSingleShot(t *testing.T) {
	h := NewHub()
	id := h.Open()
	h.Publish(id, Event{Status: "pending"})
	h.Close(id)

	_, ok := h.Drain(id)
	require.True(t, ok)

	_, ok = h.Drain(id)
	assert.False(t, ok, "a call ID is removed from the hub once drained")
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	h := NewHub()
	id := h.Open()
	h.Close(id)
	h.Publish(id, Event{Status: "late"})

	frames, ok := h.Drain(id)
	require.True(t, ok)
	assert.Empty(t, frames)
}

func TestPublishToUnknownCallIDIsNoop(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, func() {
		h.Publish("nope", Event{Status: "pending"})
	})
}

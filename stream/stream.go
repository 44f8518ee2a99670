// Package stream implements the bridge's optional Server-Sent Events
// side-channel: a tools/call response for a scripts/* tool may carry a
// stream_uri, and a client that follows it reads queued status events
// over GET /rpc/stream/{callID} (§6, §9 "SSE side-channel").
//
// The event framing ("event: message\ndata: <json>\n\n") matches the
// hybrid SSE transport's session event queue, adapted here to a single
// buffered queue per call rather than a long-lived client session.
package stream

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Event is one SSE frame's payload.
type Event struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

// call holds the queued events for one in-flight stream.
type call struct {
	events chan string
	closed bool
}

// Hub tracks one event queue per call ID. The zero value is not usable;
// construct with NewHub.
type Hub struct {
	mu    sync.Mutex
	calls map[string]*call
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{calls: make(map[string]*call)}
}

// Open allocates a new call ID with a small buffered event queue and
// registers it with the hub.
func (h *Hub) Open() string {
	id := uuid.NewString()
	h.mu.Lock()
	h.calls[id] = &call{events: make(chan string, 8)}
	h.mu.Unlock()
	return id
}

// Publish formats ev as an SSE frame and queues it for callID. A publish
// after Close or against an unknown callID is silently dropped.
func (h *Hub) Publish(callID string, ev Event) {
	h.mu.Lock()
	c, ok := h.calls[callID]
	h.mu.Unlock()
	if !ok || c.closed {
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return
	}
	frame := "event: message\ndata: " + string(body) + "\n\n"

	select {
	case c.events <- frame:
	default:
	}
}

// Close marks callID's queue as closed. Frames already queued are still
// delivered to a reader via Drain; no further Publish takes effect.
func (h *Hub) Close(callID string) {
	h.mu.Lock()
	c, ok := h.calls[callID]
	if ok {
		c.closed = true
	}
	h.mu.Unlock()
}

// Drain returns every frame currently queued for callID and reports
// whether callID is known at all. It removes the entry from the hub, so
// a stream can only be consumed once (matching the single-shot nature of
// a pending-execution status update).
func (h *Hub) Drain(callID string) ([]string, bool) {
	h.mu.Lock()
	c, ok := h.calls[callID]
	if ok {
		delete(h.calls, callID)
	}
	h.mu.Unlock()
	if !ok {
		return nil, false
	}

	close(c.events)
	frames := make([]string, 0, len(c.events))
	for frame := range c.events {
		frames = append(frames, frame)
	}
	return frames, true
}

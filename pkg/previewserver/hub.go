// Package previewserver lets a caller watch a capture run's PNGs arrive
// in real time over a WebSocket, adapted from the teacher's raw PTY
// streaming handler to push finished rasterized captures instead of
// raw terminal bytes.
package previewserver

import "sync"

// Update is one capture pushed to subscribers of a run.
type Update struct {
	RunID  string `json:"runId"`
	Step   int    `json:"step"`
	Label  string `json:"label,omitempty"`
	PNG    []byte `json:"-"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Hub fans out capture updates for each run to every subscribed
// viewer connection, mirroring the teacher's callback-registry
// pattern (RegisterRawPTYCallback/NotifyRawPTY) but keyed by run ID
// instead of session ID.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Update
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string][]chan Update)}
}

// Subscribe registers a channel to receive updates for runID. The
// returned function unsubscribes and closes the channel.
func (h *Hub) Subscribe(runID string) (<-chan Update, func()) {
	ch := make(chan Update, 32)

	h.mu.Lock()
	h.subscribers[runID] = append(h.subscribers[runID], ch)
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.subscribers[runID]
		for i, sub := range subs {
			if sub == ch {
				h.subscribers[runID] = append(subs[:i], subs[i+1:]...)
				close(ch)
				break
			}
		}
		if len(h.subscribers[runID]) == 0 {
			delete(h.subscribers, runID)
		}
	}
	return ch, unsubscribe
}

// Publish pushes one update to every subscriber of its run. Slow
// subscribers are dropped from this update rather than blocking the
// driver — matching the teacher's "channel full, skip" behavior.
func (h *Hub) Publish(u Update) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers[u.RunID] {
		select {
		case ch <- u:
		default:
		}
	}
}

package ptycap

import (
	"time"

	"github.com/ptyshot/ptyshot/pkg/vtterm"
)

// Settling policy constants, reference values from spec.md §4.3.
const (
	QuietWindow          = 180 * time.Millisecond
	MaxInitialRenderWait = 3000 * time.Millisecond
	MaxInputRenderWait   = 2000 * time.Millisecond
	ProcessDrainTimeout  = 3000 * time.Millisecond
	settlePollInterval   = 50 * time.Millisecond
)

// drainUntilQuiet feeds bytes from ch into term until either the time
// since the last received chunk exceeds quietWindow, or maxWait total
// time has elapsed. It performs one final non-blocking drain before
// returning, per spec.md's settling policy. Returns false once ch
// closes (the PTY reached end-of-stream) during the drain.
func drainUntilQuiet(ch <-chan chunk, term *vtterm.Terminal, quietWindow, maxWait time.Duration) bool {
	deadline := time.Now().Add(maxWait)
	lastActivity := time.Now()
	open := true

settleLoop:
	for time.Now().Before(deadline) {
		select {
		case c, ok := <-ch:
			if !ok {
				open = false
				break settleLoop
			}
			feedAll(term, c.data)
			lastActivity = time.Now()
		case <-time.After(settlePollInterval):
			if time.Since(lastActivity) >= quietWindow {
				break settleLoop
			}
		}
	}

	if !open {
		return false
	}

	// Final non-blocking drain of whatever already arrived.
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return false
			}
			feedAll(term, c.data)
		default:
			return true
		}
	}
}

func feedAll(term *vtterm.Terminal, data []byte) {
	for _, b := range data {
		term.Feed(b)
	}
}

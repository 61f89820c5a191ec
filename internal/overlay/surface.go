package overlay

import (
	"sync"
	"time"
)

// Clock reports the current playback position in seconds. The position is
// expected to be monotonic while playing; it may stand still while paused.
type Clock interface {
	CurrentTime() float64
}

// Node is one element of the rendering surface. The overlay creates one
// container node plus one child node per active cue, and only ever touches
// nodes through this interface.
type Node interface {
	AppendChild(child Node)
	RemoveChild(child Node)
	SetText(text string)
	SetStyle(property, value string)
}

// Surface hosts the overlay's container node and mints new nodes.
type Surface interface {
	Root() Node
	NewNode() Node
}

// Ticker invokes a callback on a fixed period. Invocations never overlap;
// Stop prevents any further invocation from starting.
type Ticker interface {
	Start(period time.Duration, fn func())
	Stop()
}

// intervalTicker runs the callback serially on a single goroutine, which
// gives the non-overlap guarantee for free.
type intervalTicker struct {
	mu      sync.Mutex
	done    chan struct{}
	stopped bool
}

func newIntervalTicker() *intervalTicker {
	return &intervalTicker{done: make(chan struct{})}
}

func (t *intervalTicker) Start(period time.Duration, fn func()) {
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

func (t *intervalTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.done)
}

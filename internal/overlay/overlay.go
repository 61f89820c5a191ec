package overlay

import (
	"sync"
	"time"

	"github.com/cueview/cueview/internal/cue"
	"github.com/cueview/cueview/internal/logging"
)

// how often the active set is recomputed
const tickPeriod = 250 * time.Millisecond

// shownCue pairs an active cue with the surface node rendering it.
type shownCue struct {
	cue  *cue.Cue
	node Node
}

// Overlay keeps a rendering surface in sync with the set of cues whose
// interval contains the current playback position. It owns one container
// node under the surface root and one child node per active cue.
//
// Appends, removals and ticks are serialized by a single mutex; the ticker
// itself never overlaps invocations. After Destroy the instance is inert:
// queued ticks do nothing and Remove reports false.
type Overlay struct {
	mu        sync.Mutex
	clock     Clock
	surface   Surface
	container Node
	timeline  *cue.Timeline
	shown     map[uint64]shownCue
	visible   bool
	destroyed bool
	ticker    Ticker
	log       *logging.Logger
}

// New builds an overlay attached to the surface and starts its tick loop
// immediately. A nil logger is replaced with a no-op one.
func New(clock Clock, surface Surface, log *logging.Logger) *Overlay {
	o := newOverlay(clock, surface, log)
	o.ticker.Start(tickPeriod, o.tick)
	o.log.Debugw("overlay started", "period", tickPeriod.String())
	return o
}

func newOverlay(clock Clock, surface Surface, log *logging.Logger) *Overlay {
	if log == nil {
		log = logging.NewNop()
	}
	o := &Overlay{
		clock:    clock,
		surface:  surface,
		timeline: cue.NewTimeline(),
		shown:    make(map[uint64]shownCue),
		visible:  true,
		ticker:   newIntervalTicker(),
		log:      log,
	}
	o.container = surface.NewNode()
	surface.Root().AppendChild(o.container)
	return o
}

// Append merges cues into the timeline. They become visible on the next
// tick that falls inside their interval.
func (o *Overlay) Append(cues []*cue.Cue) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return
	}
	o.timeline.Append(cues)
	o.log.Debugw("cues appended", "count", len(cues), "total", o.timeline.Len())
}

// Remove drops every cue strictly inside the open interval (start, end)
// and releases the node of any such cue that is currently showing. It
// returns false once the overlay has been destroyed.
func (o *Overlay) Remove(start, end float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return false
	}

	for _, c := range o.timeline.Remove(start, end) {
		if sc, ok := o.shown[c.ID()]; ok {
			o.container.RemoveChild(sc.node)
			delete(o.shown, c.ID())
			o.log.Debugw("shown cue removed", "id", c.ID())
		}
	}
	return true
}

// IsTextVisible reports the visibility flag.
func (o *Overlay) IsTextVisible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// SetTextVisibility sets the visibility flag. Nodes keep being maintained
// either way; whether hidden text is drawn is up to the surface's reader.
func (o *Overlay) SetTextVisibility(on bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = on
}

// Destroy stops the tick loop, clears the timeline and the active set, and
// detaches the container from the surface. Further calls are no-ops.
func (o *Overlay) Destroy() {
	o.mu.Lock()
	if o.destroyed {
		o.mu.Unlock()
		return
	}
	o.destroyed = true
	o.timeline.Clear()
	o.shown = make(map[uint64]shownCue)
	o.mu.Unlock()

	o.ticker.Stop()
	o.surface.Root().RemoveChild(o.container)
	o.log.Debugw("overlay destroyed")
}

// tick recomputes the active set at the current playback position and
// applies the delta to the surface.
func (o *Overlay) tick() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return
	}

	t := o.clock.CurrentTime()
	delta := computeDelta(o.shown, o.timeline.Cues(), t)

	for _, c := range delta.Deactivated {
		sc := o.shown[c.ID()]
		o.container.RemoveChild(sc.node)
		delete(o.shown, c.ID())
		o.log.Debugw("cue hidden", "id", c.ID(), "position", t)
	}

	for _, c := range delta.Activated {
		node := o.surface.NewNode()
		node.SetText(c.Payload)

		d := MapStyle(c)
		for property, value := range d.Node {
			node.SetStyle(property, value)
		}
		for property, value := range d.Container {
			o.container.SetStyle(property, value)
		}

		o.container.AppendChild(node)
		o.shown[c.ID()] = shownCue{cue: c, node: node}
		o.log.Debugw("cue shown", "id", c.ID(), "position", t)
	}
}

package overlay

import "github.com/cueview/cueview/internal/cue"

// Delta lists the cues whose visibility changed at a playback instant.
// Order within each list carries no meaning.
type Delta struct {
	Activated   []*cue.Cue
	Deactivated []*cue.Cue
}

// computeDelta compares the cues shown at the previous tick against the
// cues that should be shown at position t. A cue is a candidate while
// StartTime <= t < EndTime; an already-shown cue is only retired once t has
// passed its end, so it survives the single instant t == EndTime.
//
// Both the active map and the timeline are scanned in full. Caption
// timelines are small and the tick period coarse, so no index is kept.
func computeDelta(shown map[uint64]shownCue, timeline []*cue.Cue, t float64) Delta {
	var d Delta

	for _, sc := range shown {
		if sc.cue.StartTime > t || sc.cue.EndTime < t {
			d.Deactivated = append(d.Deactivated, sc.cue)
		}
	}

	for _, c := range timeline {
		if c.StartTime > t || c.EndTime <= t {
			continue
		}
		if _, ok := shown[c.ID()]; !ok {
			d.Activated = append(d.Activated, c)
		}
	}

	return d
}

package cue

import "sort"

// Timeline holds all known cues ordered by (StartTime, EndTime).
// It is a plain container; the overlay serializes access to it.
type Timeline struct {
	cues []*Cue
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// Append merges the given cues into the timeline and re-sorts the whole
// sequence. Duplicates by value are kept. An empty input is a no-op.
func (t *Timeline) Append(cues []*Cue) {
	if len(cues) == 0 {
		return
	}
	t.cues = append(t.cues, cues...)
	sort.SliceStable(t.cues, func(i, j int) bool {
		if t.cues[i].StartTime != t.cues[j].StartTime {
			return t.cues[i].StartTime < t.cues[j].StartTime
		}
		return t.cues[i].EndTime < t.cues[j].EndTime
	})
}

// Remove drops every cue wholly inside the open interval (start, end),
// that is StartTime > start and EndTime < end. Cues touching or crossing
// a boundary stay. The removed cues are returned so the caller can release
// whatever it holds for them.
func (t *Timeline) Remove(start, end float64) []*Cue {
	var removed []*Cue
	kept := t.cues[:0]
	for _, c := range t.cues {
		if c.StartTime > start && c.EndTime < end {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(t.cues); i++ {
		t.cues[i] = nil
	}
	t.cues = kept
	return removed
}

// Cues returns the ordered backing slice. Callers must not mutate it.
func (t *Timeline) Cues() []*Cue {
	return t.cues
}

func (t *Timeline) Len() int {
	return len(t.cues)
}

// Clear drops every cue.
func (t *Timeline) Clear() {
	t.cues = nil
}

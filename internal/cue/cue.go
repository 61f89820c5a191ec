package cue

import "sync/atomic"

// vertical alignment of the cue box within the overlay container
type DisplayAlign string

const (
	DisplayAlignBefore DisplayAlign = "before"
	DisplayAlignCenter DisplayAlign = "center"
	DisplayAlignAfter  DisplayAlign = "after"
)

// how the Line attribute is to be read
type LineInterpretation string

const (
	LineInterpretationPercentage LineInterpretation = "percentage"
	LineInterpretationLineNumber LineInterpretation = "line-number"
)

// which edge of the line axis the Line offset is measured from
type LineAlign string

const (
	LineAlignStart  LineAlign = "start"
	LineAlignCenter LineAlign = "center"
	LineAlignEnd    LineAlign = "end"
)

// text flow direction, values match the CSS writing-mode property
type WritingMode string

const (
	WritingModeHorizontalTopToBottom WritingMode = "horizontal-tb"
	WritingModeVerticalLeftToRight   WritingMode = "vertical-lr"
	WritingModeVerticalRightToLeft   WritingMode = "vertical-rl"
)

// horizontal anchoring of the cue box
type PositionAlign string

const (
	PositionAlignLeft   PositionAlign = "left"
	PositionAlignCenter PositionAlign = "center"
	PositionAlignRight  PositionAlign = "right"
)

// Cue is a single timed text unit with an interval and layout attributes.
// Cues are created by a decoder and handed to a Timeline; the id assigned
// at creation is the cue's identity for the lifetime of the overlay, so
// two cues with equal values are still distinct entries.
type Cue struct {
	id uint64

	// interval in playback seconds, start < end expected but not enforced
	StartTime float64
	EndTime   float64

	Payload string

	BackgroundColor    string
	Color              string
	Direction          string
	DisplayAlign       DisplayAlign
	FontFamily         string
	FontWeight         string
	FontSize           string
	FontStyle          string
	Line               *float64
	LineInterpretation LineInterpretation
	LineAlign          LineAlign
	WritingMode        WritingMode
	LineHeight         string
	Position           *float64
	PositionAlign      PositionAlign
	TextAlign          string
	TextDecoration     []string
	Size               float64
}

var lastID uint64

// New creates a cue with a fresh identity and default layout attributes.
func New(startTime, endTime float64, payload string) *Cue {
	return &Cue{
		id:                 atomic.AddUint64(&lastID, 1),
		StartTime:          startTime,
		EndTime:            endTime,
		Payload:            payload,
		DisplayAlign:       DisplayAlignAfter,
		LineInterpretation: LineInterpretationPercentage,
		LineAlign:          LineAlignStart,
		WritingMode:        WritingModeHorizontalTopToBottom,
		PositionAlign:      PositionAlignCenter,
		TextAlign:          "center",
		Size:               100,
	}
}

// ID returns the cue's stable identity.
func (c *Cue) ID() uint64 {
	return c.id
}

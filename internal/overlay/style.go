package overlay

import (
	"strconv"
	"strings"

	"github.com/cueview/cueview/internal/cue"
)

// Style is a flat set of CSS-like property/value directives.
type Style map[string]string

// Directives is the mapped style for one cue, split by the element the
// renderer applies it to. Container directives land on the shared overlay
// container, so when several active cues disagree on placement the last
// one activated wins.
type Directives struct {
	Node      Style
	Container Style
}

// MapStyle translates a cue's layout attributes into style directives.
// It is a pure function of the cue; unset attributes contribute nothing.
func MapStyle(c *cue.Cue) Directives {
	node := Style{}
	container := Style{}

	setIf(node, "background-color", c.BackgroundColor)
	setIf(node, "color", c.Color)
	setIf(node, "direction", c.Direction)
	setIf(node, "font-family", c.FontFamily)
	setIf(node, "font-weight", c.FontWeight)
	setIf(node, "font-size", c.FontSize)
	setIf(node, "font-style", c.FontStyle)

	switch c.DisplayAlign {
	case cue.DisplayAlignBefore:
		container["justify-content"] = "flex-start"
	case cue.DisplayAlignCenter:
		// true centering not implemented, falls back to start alignment
		container["justify-content"] = "flex-start"
	case cue.DisplayAlignAfter:
		container["justify-content"] = "flex-end"
	}

	if c.Line != nil && c.LineInterpretation == cue.LineInterpretationPercentage {
		offset := percent(*c.Line)
		switch c.WritingMode {
		case cue.WritingModeHorizontalTopToBottom:
			switch c.LineAlign {
			case cue.LineAlignStart:
				container["top"] = offset
			case cue.LineAlignEnd:
				container["bottom"] = offset
			}
		case cue.WritingModeVerticalLeftToRight:
			switch c.LineAlign {
			case cue.LineAlignStart:
				container["left"] = offset
			case cue.LineAlignEnd:
				container["right"] = offset
			}
		default:
			switch c.LineAlign {
			case cue.LineAlignStart:
				container["right"] = offset
			case cue.LineAlignEnd:
				container["left"] = offset
			}
		}
		// center line alignment not implemented
	}
	// line-number interpretation not implemented

	setIf(node, "line-height", c.LineHeight)

	if c.Position != nil {
		if c.WritingMode == cue.WritingModeHorizontalTopToBottom {
			container["left"] = percent(*c.Position)
		} else {
			container["top"] = percent(*c.Position)
		}
	}

	switch c.PositionAlign {
	case cue.PositionAlignLeft:
		container["float"] = "left"
	case cue.PositionAlignRight:
		container["float"] = "right"
	default:
		container["margin-left"] = "auto"
		container["margin-right"] = "auto"
	}

	setIf(node, "text-align", c.TextAlign)
	if len(c.TextDecoration) > 0 {
		node["text-decoration"] = strings.Join(c.TextDecoration, " ")
	}
	setIf(node, "writing-mode", string(c.WritingMode))

	if c.Size != 0 {
		if c.WritingMode == cue.WritingModeHorizontalTopToBottom {
			container["width"] = percent(c.Size)
		} else {
			container["height"] = percent(c.Size)
		}
	}

	return Directives{Node: node, Container: container}
}

func setIf(s Style, property, value string) {
	if value != "" {
		s[property] = value
	}
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

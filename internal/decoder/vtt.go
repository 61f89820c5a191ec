package decoder

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cueview/cueview/internal/cue"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})(.*)`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})(.*)`,
	)
)

func parseVTTFile(path string) ([]*cue.Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var cues []*cue.Cue
	scanner := bufio.NewScanner(file)

	var current *cue.Cue
	var textLines []string
	lineNum := 0
	headerParsed := false

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Payload = strings.Join(textLines, "\n")
			cues = append(cues, current)
		}
		current = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if !headerParsed {
			if strings.HasPrefix(strings.TrimSpace(line), "WEBVTT") {
				headerParsed = true
				continue
			}
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		matches := vttTimestampRegex.FindStringSubmatch(line)
		if len(matches) == 10 {
			flush()
			start, end, err := parseTimestampPair(matches[1:9])
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp at line %d: %w", lineNum, err)
			}
			current = cue.New(start, end, "")
			applyCueSettings(current, matches[9])
			continue
		}

		shortMatches := vttShortTimestampRegex.FindStringSubmatch(line)
		if len(shortMatches) == 8 {
			flush()
			fields := []string{
				"00", shortMatches[1], shortMatches[2], shortMatches[3],
				"00", shortMatches[4], shortMatches[5], shortMatches[6],
			}
			start, end, err := parseTimestampPair(fields)
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp at line %d: %w", lineNum, err)
			}
			current = cue.New(start, end, "")
			applyCueSettings(current, shortMatches[7])
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}

	return cues, nil
}

// applyCueSettings maps the settings after a VTT timing line (line:,
// position:, align:, vertical:, size:) onto the cue's layout attributes.
// Unknown or malformed settings are skipped; the cue keeps its defaults.
func applyCueSettings(c *cue.Cue, settings string) {
	for _, token := range strings.Fields(settings) {
		name, value, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		switch name {
		case "vertical":
			switch value {
			case "rl":
				c.WritingMode = cue.WritingModeVerticalRightToLeft
			case "lr":
				c.WritingMode = cue.WritingModeVerticalLeftToRight
			}
		case "line":
			applyLineSetting(c, value)
		case "position":
			applyPositionSetting(c, value)
		case "align":
			switch value {
			case "start", "left":
				c.TextAlign = "left"
			case "end", "right":
				c.TextAlign = "right"
			case "center", "middle":
				c.TextAlign = "center"
			}
		case "size":
			if v, ok := parsePercentage(value); ok {
				c.Size = v
			}
		}
	}
}

// line:12%  line:12%,end  line:3  (bare integers are line numbers)
func applyLineSetting(c *cue.Cue, value string) {
	value, align, hasAlign := strings.Cut(value, ",")
	if v, ok := parsePercentage(value); ok {
		c.Line = &v
		c.LineInterpretation = cue.LineInterpretationPercentage
	} else if v, err := strconv.ParseFloat(value, 64); err == nil {
		c.Line = &v
		c.LineInterpretation = cue.LineInterpretationLineNumber
	} else {
		return
	}
	if !hasAlign {
		return
	}
	switch align {
	case "start":
		c.LineAlign = cue.LineAlignStart
	case "center", "middle":
		c.LineAlign = cue.LineAlignCenter
	case "end":
		c.LineAlign = cue.LineAlignEnd
	}
}

// position:10%  position:10%,line-left
func applyPositionSetting(c *cue.Cue, value string) {
	value, align, hasAlign := strings.Cut(value, ",")
	v, ok := parsePercentage(value)
	if !ok {
		return
	}
	c.Position = &v
	if !hasAlign {
		return
	}
	switch align {
	case "line-left", "start", "left":
		c.PositionAlign = cue.PositionAlignLeft
	case "line-right", "end", "right":
		c.PositionAlign = cue.PositionAlignRight
	case "center", "middle":
		c.PositionAlign = cue.PositionAlignCenter
	}
}

func parsePercentage(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

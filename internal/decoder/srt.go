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

var srtTimestampRegex = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
)

func parseSRTFile(path string) ([]*cue.Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer file.Close()

	var cues []*cue.Cue
	scanner := bufio.NewScanner(file)

	var current *cue.Cue
	var textLines []string
	sawIndex := false
	lineNum := 0

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Payload = strings.Join(textLines, "\n")
			cues = append(cues, current)
		}
		current = nil
		textLines = nil
		sawIndex = false
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil && !sawIndex {
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				sawIndex = true
				continue
			}
		}

		if current == nil {
			matches := srtTimestampRegex.FindStringSubmatch(line)
			if len(matches) == 9 {
				start, end, err := parseTimestampPair(matches[1:])
				if err != nil {
					return nil, fmt.Errorf("invalid timestamp at line %d: %w", lineNum, err)
				}
				current = cue.New(start, end, "")
				continue
			}
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	return cues, nil
}

// parseTimestampPair converts the eight captured h/m/s/ms fields of a
// "start --> end" line into seconds.
func parseTimestampPair(fields []string) (start, end float64, err error) {
	nums := make([]int, 8)
	for i, field := range fields {
		nums[i], err = strconv.Atoi(field)
		if err != nil {
			return 0, 0, err
		}
	}
	start = timestampSeconds(nums[0], nums[1], nums[2], nums[3])
	end = timestampSeconds(nums[4], nums[5], nums[6], nums[7])
	return start, end, nil
}

package decoder

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cueview/cueview/internal/cue"
)

// Open parses a subtitle file into playable cues, dispatching on the
// file extension.
func Open(path string) ([]*cue.Cue, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return parseSRTFile(path)
	case ".vtt":
		return parseVTTFile(path)
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}

func timestampSeconds(hours, minutes, seconds, millis int) float64 {
	return float64(hours)*3600 +
		float64(minutes)*60 +
		float64(seconds) +
		float64(millis)/1000
}

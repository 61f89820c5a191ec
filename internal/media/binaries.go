package media

import (
	"fmt"
	"os"
	"os/exec"
)

// FFmpegPath locates the ffmpeg binary: the CUEVIEW_FFMPEG_PATH override
// first, then PATH.
func FFmpegPath() (string, error) {
	if path := os.Getenv("CUEVIEW_FFMPEG_PATH"); path != "" {
		return path, nil
	}
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found: install it or set CUEVIEW_FFMPEG_PATH")
	}
	return path, nil
}

// FFprobePath locates the ffprobe binary: the CUEVIEW_FFPROBE_PATH
// override first, then PATH.
func FFprobePath() (string, error) {
	if path := os.Getenv("CUEVIEW_FFPROBE_PATH"); path != "" {
		return path, nil
	}
	path, err := exec.LookPath("ffprobe")
	if err != nil {
		return "", fmt.Errorf("ffprobe not found: install it or set CUEVIEW_FFPROBE_PATH")
	}
	return path, nil
}

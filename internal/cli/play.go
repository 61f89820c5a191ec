package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cueview/cueview/internal/decoder"
	"github.com/cueview/cueview/internal/media"
	"github.com/cueview/cueview/internal/overlay"
	"github.com/cueview/cueview/internal/term"
)

var playCmd = &cobra.Command{
	Use:   "play [subtitle_or_video_file]",
	Short: "Preview timed text against a live playback clock",
	Long: `Play renders the cues of a subtitle file on a terminal surface, timed
against a wall clock as if a video were playing.

For video files the first embedded subtitle track is extracted with
ffmpeg before playback (use --track to pick another one).

Examples:
  cueview play episode.srt
  cueview play movie.mkv --track 1
  cueview play subs.vtt --offset 90 --height 16`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Float64("offset", 0, "Start position in seconds")
	playCmd.Flags().
		Float64("duration", 0, "Stop after this playback position (default: last cue end)")
	playCmd.Flags().Int("track", 0, "Subtitle track index for video files")
	playCmd.Flags().Int("width", 80, "Frame width in columns")
	playCmd.Flags().Int("height", 12, "Frame height in rows")
	playCmd.Flags().
		Duration("refresh", 100*time.Millisecond, "Frame refresh interval")
}

func runPlay(cmd *cobra.Command, args []string) error {
	path := args[0]

	offset, _ := cmd.Flags().GetFloat64("offset")
	duration, _ := cmd.Flags().GetFloat64("duration")
	track, _ := cmd.Flags().GetInt("track")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	refresh, _ := cmd.Flags().GetDuration("refresh")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	switch {
	case media.IsVideoFile(path):
		tempDir, err := os.MkdirTemp("", "cueview-*")
		if err != nil {
			return fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)

		logger.Infow("Extracting subtitle track",
			"input", path,
			"track", track,
		)
		subPath := filepath.Join(tempDir, "track.vtt")
		if err := media.ExtractSubtitles(path, subPath, track); err != nil {
			return fmt.Errorf("failed to extract subtitles: %w", err)
		}

		if duration == 0 {
			if d, err := media.GetDuration(path); err == nil {
				duration = d.Seconds()
			}
		}
		path = subPath

	case !media.IsSubtitleFile(path):
		return fmt.Errorf(
			"unsupported file type: %s (expected subtitle or video file)",
			filepath.Ext(path),
		)
	}

	cues, err := decoder.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode cues: %w", err)
	}
	if len(cues) == 0 {
		return fmt.Errorf("no cues found in %s", path)
	}

	if duration == 0 {
		for _, c := range cues {
			if c.EndTime > duration {
				duration = c.EndTime
			}
		}
	}

	logger.Infow("Starting playback",
		"cues", len(cues),
		"offset", offset,
		"duration", duration,
	)

	surface := term.NewSurface()
	clk := newWallClock(offset)

	o := overlay.New(clk, surface, logger)
	defer o.Destroy()
	o.Append(cues)

	out := cmd.OutOrStdout()
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for range ticker.C {
		pos := clk.CurrentTime()
		if pos > duration {
			break
		}

		frame := ""
		if o.IsTextVisible() {
			frame = surface.Render(width, height)
		}
		fmt.Fprint(out, "\033[H\033[2J")
		fmt.Fprintln(out, frame)
		fmt.Fprintf(out, "  %s / %s\n", formatPosition(pos), formatPosition(duration))
	}

	fmt.Fprintln(out, "Playback finished.")
	return nil
}

// wallClock maps wall time since construction to a playback position.
type wallClock struct {
	start  time.Time
	offset float64
}

func newWallClock(offset float64) *wallClock {
	return &wallClock{start: time.Now(), offset: offset}
}

func (c *wallClock) CurrentTime() float64 {
	return c.offset + time.Since(c.start).Seconds()
}

// formatPosition formats seconds into "H:MM:SS" or "MM:SS".
func formatPosition(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

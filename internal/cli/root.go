package cli

import (
	"github.com/cueview/cueview/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cueview",
	Short: "Terminal preview player for timed text",
	Long: `Cueview renders timed text (captions/subtitles) against a playback
clock, the same way a video player overlays them on screen.

It reads SRT and WebVTT files, or extracts an embedded subtitle track
from a video container, and previews the cues on a terminal surface.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

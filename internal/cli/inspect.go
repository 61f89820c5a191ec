package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cueview/cueview/internal/decoder"
	"github.com/cueview/cueview/internal/overlay"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show the decoded cues and their computed style directives",
	Long: `Inspect decodes a subtitle file and prints every cue with the visual
placement and text styling a player overlay would apply to it.

Examples:
  cueview inspect episode.srt
  cueview inspect subs.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cues, err := decoder.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode cues: %w", err)
	}

	out := cmd.OutOrStdout()
	for i, c := range cues {
		fmt.Fprintf(out, "cue %d: %s --> %s\n",
			i+1, formatPosition(c.StartTime), formatPosition(c.EndTime))
		fmt.Fprintf(out, "  %s\n", strings.ReplaceAll(c.Payload, "\n", "\n  "))

		d := overlay.MapStyle(c)
		printStyle(out, "node", d.Node)
		printStyle(out, "container", d.Container)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d cues\n", len(cues))
	return nil
}

func printStyle(out io.Writer, label string, s overlay.Style) {
	if len(s) == 0 {
		return
	}
	properties := make([]string, 0, len(s))
	for property := range s {
		properties = append(properties, property)
	}
	sort.Strings(properties)

	pairs := make([]string, 0, len(properties))
	for _, property := range properties {
		pairs = append(pairs, property+": "+s[property])
	}
	fmt.Fprintf(out, "  %s    %s\n", label, strings.Join(pairs, "; "))
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/preview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <file> [out.mid]",
	Short: "Renders a chart's chords to MIDI",
	Long:  `Renders the chord progression of a chart to a Standard MIDI File`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need 1 or 2 args...")
		}
		text := readInput(args[0])
		chords := chord.ExtractAll(text)
		if len(chords) == 0 {
			panic("No chords found in " + args[0])
		}

		outPath := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".mid"
		if len(args) == 2 {
			outPath = args[1]
		}

		f, err := os.Create(outPath)
		if err != nil {
			panic("Could not create output file: " + err.Error())
		}
		defer f.Close()

		if err := preview.Render(chords, f); err != nil {
			panic("Could not write midi: " + err.Error())
		}
		fmt.Printf("Wrote %v chords to %v\n", len(chords), outPath)
	},
}

package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/keydetect"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detectKeyCmd)
}

var detectKeyCmd = &cobra.Command{
	Use:   "detect-key <file>",
	Short: "Detects the key of a chart",
	Long:  `Detects the most likely key from the chords in a chart`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		text := readInput(args[0])
		result := keydetect.Detect(chord.Names(chord.ExtractAll(text)))
		if result.Undetermined() {
			fmt.Println("key: undetermined")
		} else {
			fmt.Printf("key: %v\n", result.Key)
		}
		fmt.Printf("confidence: %v\n", result.Confidence)
	},
}

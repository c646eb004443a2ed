package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/transpose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <file> <fromKey> <toKey>",
	Short: "Transposes a chart",
	Long:  `Transposes a chart between two keys, re-spelling chords for the target key`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			panic("Need 3 args...")
		}
		text := readInput(args[0])
		fmt.Print(transpose.Document(text, args[1], args[2]))
	},
}

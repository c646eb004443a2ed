package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordshift",
	Short: "Chord chart toolkit",
	Long:  `Transposes, analyzes and normalizes chord charts.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// readInput reads a chart from a path, or stdin for "-".
func readInput(path string) string {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			panic("Could not read stdin: " + err.Error())
		}
		return string(data)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read file: " + err.Error())
	}
	return string(data)
}

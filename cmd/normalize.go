package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/section"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Normalizes section markers",
	Long:  `Rewrites section markers to canonical form, inferring them when missing`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		text := readInput(args[0])
		fmt.Print(section.Normalize(text).Text)
	},
}

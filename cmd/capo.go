package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/capo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(capoCmd)
}

var capoCmd = &cobra.Command{
	Use:   "capo <key>",
	Short: "Suggests capo positions",
	Long:  `Suggests capo positions that reach easy open-chord keys`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		key := args[0]
		if !capo.IsDifficultKey(key) {
			fmt.Printf("%v is an easy open key, no capo needed\n", key)
			return
		}
		for _, s := range capo.SuggestPositions(key) {
			fmt.Printf("capo %v -> play in %v\n", s.CapoFret, s.PlayedKey)
		}
	},
}

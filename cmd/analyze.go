package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/keydetect"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/section"
	"github.com/jsphweid/chordshift/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dir>",
	Short: "Analyzes a directory of charts",
	Long:  `Detects keys and normalizes sections for every chart under a directory`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		analyze(args[0])
	},
}

type fileResult struct {
	path       string
	numChords  int
	key        model.KeyDetection
	normalized bool
	err        error
}

func analyzeOne(path, outDir string) fileResult {
	res := fileResult{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}
	text := string(data)

	chords := chord.ExtractAll(text)
	res.numChords = len(chords)
	res.key = keydetect.Detect(chord.Names(chords))

	norm := section.Normalize(text)
	res.normalized = norm.SectionsNormalized
	res.err = os.WriteFile(filepath.Join(outDir, filepath.Base(path)), []byte(norm.Text), 0666)
	return res
}

// analyze runs every chart on its own worker. The engine keeps no shared
// state, so nothing here needs coordination beyond the wait group.
func analyze(dir string) {
	paths := util.GatherAllChartPaths(dir, 0)
	if len(paths) == 0 {
		fmt.Println("No chart files found")
		return
	}

	runID := uuid.New().String()
	outDir := filepath.Join(constants.GetOutDir(), runID)
	if err := os.MkdirAll(outDir, 0777); err != nil {
		panic("Could not create output dir: " + err.Error())
	}

	results := make([]fileResult, len(paths))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = analyzeOne(path, outDir)
		}(i, path)
	}
	wg.Wait()

	var chordCounts []int
	var numNormalized int
	for _, r := range results {
		if r.err != nil {
			fmt.Printf("Skipping %v because: %v\n", r.path, r.err)
			continue
		}
		chordCounts = append(chordCounts, r.numChords)
		if r.normalized {
			numNormalized++
		}
		key := r.key.Key
		if r.key.Undetermined() {
			key = "?"
		}
		fmt.Printf("%v: key=%v (%v), chords=%v\n", r.path, key, r.key.Confidence, r.numChords)
	}

	fmt.Printf("Processed %v files, %v chords total, %v normalized\n",
		len(paths), util.Sum(chordCounts), numNormalized)
	fmt.Printf("Normalized copies written to %v\n", outDir)
}

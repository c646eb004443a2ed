package keydetect

import (
	"testing"

	"github.com/jsphweid/chordshift/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectCMajorHighConfidence(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"C", "F", "G", "C", "Am", "F", "G", "C"})
	assert.Equal("C", result.Key)
	assert.Equal(model.ConfidenceHigh, result.Confidence)
}

func TestDetectGMajor(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"G", "C", "D", "G"})
	assert.Equal("G", result.Key)
}

func TestDetectWithExtensions(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"G", "Em7", "C", "D7", "G", "Cadd9", "D"})
	assert.Equal("G", result.Key)
}

func TestDetectIgnoresSlashBass(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"G", "G/B", "C", "D/F#", "G"})
	assert.Equal("G", result.Key)
}

func TestDetectFlatKey(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"Bb", "Eb", "F", "Bb"})
	assert.Equal("Bb", result.Key)
}

func TestDetectSharpKey(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"F#", "B", "C#", "F#"})
	assert.Equal("F#", result.Key)
}

func TestDetectLowercase(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"g", "c", "d", "g"})
	assert.Equal("G", result.Key)
}

func TestDetectSkipsGarbage(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"X", "???", "", "G", "C", "D"})
	assert.Equal("G", result.Key)
}

func TestDetectEmptyIsUndetermined(t *testing.T) {
	assert := assert.New(t)
	result := Detect(nil)
	assert.True(result.Undetermined())
	assert.Equal(model.ConfidenceLow, result.Confidence)
	assert.Equal(0.0, result.Score)
}

func TestDetectAllGarbageIsUndetermined(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"X", "foo", ""})
	assert.True(result.Undetermined())
	assert.Equal(model.ConfidenceLow, result.Confidence)
}

func TestDetectChromaticIsLowConfidence(t *testing.T) {
	assert := assert.New(t)
	result := Detect([]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"})
	assert.Equal(model.ConfidenceLow, result.Confidence)
}

func TestConfidenceMonotonicInMargin(t *testing.T) {
	assert := assert.New(t)

	rank := map[model.Confidence]int{
		model.ConfidenceLow:    0,
		model.ConfidenceMedium: 1,
		model.ConfidenceHigh:   2,
	}

	// progressively clearer C major progressions
	progressions := [][]string{
		{"C", "D", "E", "F", "G", "A", "B"},
		{"C", "F", "G", "C"},
		{"C", "F", "G", "C", "Am", "F", "G", "C"},
		{"C", "G", "C", "G", "C", "F", "C", "G", "C"},
	}

	lastMargin := -1.0
	lastRank := -1
	for _, p := range progressions {
		result := Detect(p)
		if result.Score >= lastMargin {
			assert.GreaterOrEqual(rank[result.Confidence], lastRank)
		}
		lastMargin = result.Score
		lastRank = rank[result.Confidence]
	}
}

func TestDetectRepetitionCompounds(t *testing.T) {
	assert := assert.New(t)
	weak := Detect([]string{"C", "F", "G"})
	strong := Detect([]string{"C", "C", "C", "F", "G", "C", "C"})
	assert.Equal("C", weak.Key)
	assert.Equal("C", strong.Key)
	assert.GreaterOrEqual(strong.Score, weak.Score)
}

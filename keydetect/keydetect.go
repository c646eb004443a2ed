package keydetect

import (
	"sort"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/pitch"
	"github.com/jsphweid/chordshift/util"
)

// Weight of each diatonic scale degree when scoring a candidate tonic.
// Keyed by interval above the tonic in semitones.
var chordWeights = map[int]float64{
	0:  3.0, // I
	7:  2.5, // V
	5:  2.0, // IV
	9:  1.5, // vi
	2:  1.0, // ii
	4:  1.0, // iii
	11: 0.5, // vii
}

// Chords outside the candidate scale pull its score down per occurrence.
const nonDiatonicWeight = -0.3

// Margin cutoffs between best and runner-up. Tunable, the labels only
// have to stay monotonic in the margin.
var (
	highMargin   = 0.15
	mediumMargin = 0.05
)

func scoreCandidate(rootCounts map[int]int, candidate int) float64 {
	var score float64
	for root, count := range rootCounts {
		interval := ((root-candidate)%12 + 12) % 12
		weight, ok := chordWeights[interval]
		if !ok {
			weight = nonDiatonicWeight
		}
		score += weight * float64(count)
	}
	return score
}

// Detect infers the most likely major-key tonal center from an ordered
// chord list. Qualities are ignored, only roots count; unparseable
// entries are skipped. With nothing usable the result is the
// undetermined sentinel at low confidence.
func Detect(chords []string) model.KeyDetection {
	rootCounts := make(map[int]int)
	for _, raw := range chords {
		c, ok := chord.Parse(raw)
		if !ok {
			continue
		}
		semitone, err := pitch.NoteToSemitone(c.Root)
		if err != nil {
			continue
		}
		rootCounts[semitone]++
	}

	if len(rootCounts) == 0 {
		return model.KeyDetection{Confidence: model.ConfidenceLow}
	}

	scores := make(map[int]float64)
	for candidate := 0; candidate < 12; candidate++ {
		scores[candidate] = scoreCandidate(rootCounts, candidate)
	}

	candidates := util.GetKeys(scores)
	sort.Slice(candidates, func(i, j int) bool {
		if scores[candidates[i]] != scores[candidates[j]] {
			return scores[candidates[i]] > scores[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	best, second := candidates[0], candidates[1]
	var margin float64
	if scores[best] > 0 {
		margin = (scores[best] - scores[second]) / scores[best]
		margin = util.Min(margin, 1.0)
	}

	confidence := model.ConfidenceLow
	switch {
	case margin >= highMargin:
		confidence = model.ConfidenceHigh
	case margin >= mediumMargin:
		confidence = model.ConfidenceMedium
	}

	return model.KeyDetection{
		Key:        pitch.CanonicalKey(best).Name,
		Confidence: confidence,
		Score:      margin,
	}
}

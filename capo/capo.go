package capo

import (
	"sort"

	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/pitch"
)

// Keys a player can cover with open-chord shapes, easiest shapes first.
// Suggestions rank by this order.
var easyKeys = [...]string{"E", "A", "D", "G", "C"}

// Frets above this are considered impractical for a capo.
const maxFret = 7

func easyRank(name string) int {
	for i, k := range easyKeys {
		if k == name {
			return i
		}
	}
	return -1
}

// PlayedKey is the key a player's fretted shapes sound in when the chart
// is in target and the capo sits at fret: the target shifted down by the
// fret count. Guitar convention, so always sharp-spelled.
func PlayedKey(target model.Key, fret int) model.Key {
	semitone := ((target.Semitone-fret)%12 + 12) % 12
	return model.Key{
		Semitone:  semitone,
		UseSharps: true,
		Name:      pitch.SemitoneToNote(semitone, true),
	}
}

// SuggestPositions proposes capo frets 1 through 7 whose played key lands
// in the easy set, best shape first, lower fret breaking ties. An
// unparseable target yields no suggestions.
func SuggestPositions(targetKey string) []model.CapoSuggestion {
	target, err := pitch.ParseKey(targetKey)
	if err != nil {
		return nil
	}

	var res []model.CapoSuggestion
	for fret := 1; fret <= maxFret; fret++ {
		played := PlayedKey(target, fret)
		if easyRank(played.Name) >= 0 {
			res = append(res, model.CapoSuggestion{CapoFret: fret, PlayedKey: played.Name})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		ri, rj := easyRank(res[i].PlayedKey), easyRank(res[j].PlayedKey)
		if ri != rj {
			return ri < rj
		}
		return res[i].CapoFret < res[j].CapoFret
	})
	return res
}

// IsDifficultKey reports whether a key is outside the easy open-shape
// set, i.e. whether capo suggestions are worth surfacing. Anything the
// pitch model cannot read counts as not difficult.
func IsDifficultKey(key string) bool {
	semitone, err := pitch.NoteToSemitone(key)
	if err != nil {
		return false
	}
	return easyRank(pitch.SemitoneToNote(semitone, true)) < 0
}

package pitch

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordshift/model"
)

// note name -> pitch class, C = 0. Double-mapped enharmonics included
// so B#/Cb style spellings still resolve.
var noteToSemitone = map[string]int{
	"C":  0,
	"B#": 0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"Fb": 4,
	"E#": 5,
	"F":  5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
	"Cb": 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// canonical spelling bias per pitch class. Sharp-side keys on the circle
// of fifths (C, G, D, A, E, B, F#, C#) spell with sharps, flat-side keys
// (F, Bb, Eb, Ab, Db, Gb) with flats. At the overlap, C# and F# win over
// Db and Gb.
var canonicalSharps = [12]bool{
	true,  // C
	true,  // C#
	true,  // D
	false, // Eb
	true,  // E
	false, // F
	true,  // F#
	true,  // G
	false, // Ab
	true,  // A
	false, // Bb
	true,  // B
}

// InvalidNoteError means a note or key string matched no known spelling.
type InvalidNoteError struct {
	Note string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note: %q", e.Note)
}

func normalizeAccidentals(s string) string {
	s = strings.ReplaceAll(s, "♯", "#")
	return strings.ReplaceAll(s, "♭", "b")
}

// NoteToSemitone maps a note name (letter A-G plus optional accidental,
// unicode accidentals accepted) to its pitch class.
func NoteToSemitone(note string) (int, error) {
	n := normalizeAccidentals(strings.TrimSpace(note))
	if n == "" {
		return 0, &InvalidNoteError{Note: note}
	}
	n = strings.ToUpper(n[:1]) + n[1:]
	v, ok := noteToSemitone[n]
	if !ok {
		return 0, &InvalidNoteError{Note: note}
	}
	return v, nil
}

// SemitoneToNote spells a pitch class using the requested bias. The input
// is normalized into [0,11] first so callers can pass shifted values.
func SemitoneToNote(semitone int, useSharps bool) string {
	pc := ((semitone % 12) + 12) % 12
	if useSharps {
		return sharpNames[pc]
	}
	return flatNames[pc]
}

// Interval is the ascending distance in semitones from one key to the
// other, always in [0,11]. Going down a whole step is the same as going
// up ten.
func Interval(from, to model.Key) int {
	return ((to.Semitone-from.Semitone)%12 + 12) % 12
}

// ParseKey resolves a key name into a Key. The input spelling decides the
// bias ("Gb" stays on flats even though F# is canonical for that pitch
// class); plain letters fall back to the canonical table.
func ParseKey(name string) (model.Key, error) {
	semitone, err := NoteToSemitone(name)
	if err != nil {
		return model.Key{}, err
	}
	useSharps := canonicalSharps[semitone]
	n := normalizeAccidentals(strings.TrimSpace(name))
	if strings.Contains(n[1:], "b") {
		useSharps = false
	} else if strings.Contains(n[1:], "#") {
		useSharps = true
	}
	return model.Key{
		Semitone:  semitone,
		UseSharps: useSharps,
		Name:      SemitoneToNote(semitone, useSharps),
	}, nil
}

// CanonicalKey is the display key for a bare pitch class, spelled per the
// canonical bias table.
func CanonicalKey(semitone int) model.Key {
	pc := ((semitone % 12) + 12) % 12
	return model.Key{
		Semitone:  pc,
		UseSharps: canonicalSharps[pc],
		Name:      SemitoneToNote(pc, canonicalSharps[pc]),
	}
}

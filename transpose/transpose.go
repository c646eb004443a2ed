package transpose

import (
	"regexp"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/pitch"
)

var bracketSpan = regexp.MustCompile(`\[[^\]]*\]`)

// Chord shifts root and bass up by shift semitones, re-spelling per the
// requested bias. Quality passes through untouched. A root or bass the
// pitch model rejects is left as it was.
func Chord(c model.Chord, shift int, useSharps bool) model.Chord {
	out := c
	if semitone, err := pitch.NoteToSemitone(c.Root); err == nil {
		out.Root = pitch.SemitoneToNote(semitone+shift, useSharps)
	}
	if c.Bass != "" {
		if semitone, err := pitch.NoteToSemitone(c.Bass); err == nil {
			out.Bass = pitch.SemitoneToNote(semitone+shift, useSharps)
		}
	}
	return out
}

// Document rewrites every bracketed chord in text from one key to the
// other. Markers and unparseable tokens are copied verbatim, so the
// count and order of bracket spans never changes. With no usable from
// key, or fromKey == toKey, the input comes back byte-identical.
func Document(text, fromKey, toKey string) string {
	if fromKey == "" || fromKey == toKey {
		return text
	}
	if len(text) > constants.GetMaxDocumentBytes() {
		return text
	}

	from, err := pitch.ParseKey(fromKey)
	if err != nil {
		return text
	}
	to, err := pitch.ParseKey(toKey)
	if err != nil {
		return text
	}

	shift := pitch.Interval(from, to)
	return bracketSpan.ReplaceAllStringFunc(text, func(span string) string {
		c, ok := chord.Parse(span[1 : len(span)-1])
		if !ok {
			return span
		}
		return "[" + Chord(c, shift, to.UseSharps).String() + "]"
	})
}

package transpose

import (
	"regexp"
	"testing"

	"github.com/jsphweid/chordshift/model"
	"github.com/stretchr/testify/assert"
)

func TestChordShiftsRootAndBass(t *testing.T) {
	assert := assert.New(t)
	c := Chord(model.Chord{Root: "D", Bass: "F#"}, 2, true)
	assert.Equal(model.Chord{Root: "E", Bass: "G#"}, c)
}

func TestChordQualityPassesThrough(t *testing.T) {
	assert := assert.New(t)
	c := Chord(model.Chord{Root: "A", Quality: "m7sus4"}, 3, true)
	assert.Equal("Cm7sus4", c.String())
}

func TestChordRespellsPerBias(t *testing.T) {
	assert := assert.New(t)
	sharp := Chord(model.Chord{Root: "A"}, 1, true)
	flat := Chord(model.Chord{Root: "A"}, 1, false)
	assert.Equal("A#", sharp.Root)
	assert.Equal("Bb", flat.Root)
}

func TestDocumentConcreteScenario(t *testing.T) {
	assert := assert.New(t)
	got := Document("[G]Test [D]line", "G", "A")
	assert.Equal("[A]Test [E]line", got)
}

func TestDocumentIdentity(t *testing.T) {
	assert := assert.New(t)
	text := "[G]Amazing [C]grace [?bad token?]\n[Verse 1]\nlyrics"
	for _, key := range []string{"C", "G", "F#", "Bb", "Eb"} {
		assert.Equal(text, Document(text, key, key))
	}
	assert.Equal(text, Document(text, "", "D"))
}

func TestDocumentRoundTrip(t *testing.T) {
	assert := assert.New(t)
	text := "[G]Amazing [C]grace, how [D/F#]sweet [Em7]the sound"
	up := Document(text, "G", "Bb")
	back := Document(up, "Bb", "G")
	assert.Equal(text, back)
}

func TestDocumentMarkerPreservation(t *testing.T) {
	assert := assert.New(t)
	text := "[Intro]\n[G]la [C]la\n[Chorus]\n[D]la [not-a-chord]"
	got := Document(text, "G", "A")

	spans := regexp.MustCompile(`\[[^\]]*\]`)
	inSpans := spans.FindAllString(text, -1)
	outSpans := spans.FindAllString(got, -1)
	assert.Equal(len(inSpans), len(outSpans))

	assert.Equal("[Intro]", outSpans[0])
	assert.Equal("[Chorus]", outSpans[3])
	assert.Equal("[not-a-chord]", outSpans[5])
}

func TestDocumentUsesTargetSpelling(t *testing.T) {
	assert := assert.New(t)
	// F major's fourth is Bb, never A#
	got := Document("[C]one [F]two", "C", "F")
	assert.Equal("[F]one [Bb]two", got)

	// same shift toward a sharp key spells sharp
	got = Document("[C]one [F]two", "C", "B")
	assert.Equal("[B]one [E]two", got)
}

func TestDocumentRespellsAtIntervalZero(t *testing.T) {
	assert := assert.New(t)
	// Gb and F# share a pitch class; only spelling changes
	got := Document("[Gb]la [Db]la", "Gb", "F#")
	assert.Equal("[F#]la [C#]la", got)
}

func TestDocumentBadKeysAreNoOps(t *testing.T) {
	assert := assert.New(t)
	text := "[G]la"
	assert.Equal(text, Document(text, "H", "A"))
	assert.Equal(text, Document(text, "G", "nope"))
}

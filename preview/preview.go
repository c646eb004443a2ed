package preview

import (
	"io"
	"strings"

	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerBeat  = 960
	beatsPerChord = 2
	velocity      = 96

	rootOctave = 48 // C3
	bassOctave = 36 // C2
)

// Voicing maps a parsed chord to the MIDI notes used to sound it: root,
// third, fifth and octave in root position, plus the slash bass below.
// The opaque quality is only peeked at for the third; that is all a
// preview needs.
func Voicing(c model.Chord) []uint8 {
	root, err := pitch.NoteToSemitone(c.Root)
	if err != nil {
		return nil
	}

	third := 4
	if minorish(c.Quality) {
		third = 3
	}

	notes := []uint8{
		uint8(rootOctave + root),
		uint8(rootOctave + root + third),
		uint8(rootOctave + root + 7),
		uint8(rootOctave + root + 12),
	}

	if c.Bass != "" {
		if bass, err := pitch.NoteToSemitone(c.Bass); err == nil {
			notes = append([]uint8{uint8(bassOctave + bass)}, notes...)
		}
	}
	return notes
}

func minorish(quality string) bool {
	if strings.HasPrefix(quality, "maj") {
		return false
	}
	return strings.HasPrefix(quality, "m") || strings.HasPrefix(quality, "dim")
}

// Render writes a chord progression as a one-track Standard MIDI File,
// each chord held for two beats.
func Render(chords []model.Chord, w io.Writer) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("chords"))
	track.Add(0, smf.MetaTempo(120))

	for _, c := range chords {
		notes := Voicing(c)
		if len(notes) == 0 {
			continue
		}
		for _, note := range notes {
			track.Add(0, midi.NoteOn(0, note, velocity))
		}
		for i, note := range notes {
			var delta uint32
			if i == 0 {
				delta = ticksPerBeat * beatsPerChord
			}
			track.Add(delta, midi.NoteOff(0, note))
		}
	}
	track.Close(0)

	s.Add(track)

	_, err := s.WriteTo(w)
	return err
}

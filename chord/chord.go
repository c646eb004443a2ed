package chord

import (
	"regexp"
	"strings"

	"github.com/jsphweid/chordshift/model"
)

// Grammar: letter, optional accidental, then any run of known quality
// atoms. Everything that fails this is a marker, not a chord — that is
// how chords and section markers share one bracket syntax.
var rootPattern = regexp.MustCompile(`^([A-Ga-g])([#b♯♭]?)((?:maj|min|dim|aug|sus|add|m|[0-9])*)$`)
var bassPattern = regexp.MustCompile(`^([A-Ga-g])([#b♯♭]?)$`)
var bracketPattern = regexp.MustCompile(`\[([^\]]*)\]`)

func normalizeNote(letter, accidental string) string {
	letter = strings.ToUpper(letter)
	switch accidental {
	case "♯":
		accidental = "#"
	case "♭":
		accidental = "b"
	}
	return letter + accidental
}

// IsChordToken reports whether bracket content reads as a chord.
func IsChordToken(content string) bool {
	_, ok := Parse(content)
	return ok
}

// Parse decomposes a chord token into root, opaque quality and optional
// bass. The bool is false when the token is not a chord; callers must
// treat that as "leave the token alone", never as an error.
func Parse(content string) (model.Chord, bool) {
	s := strings.TrimSpace(content)
	if s == "" {
		return model.Chord{}, false
	}

	// split on the last slash so qualities containing digits stay with
	// the root
	body, bass := s, ""
	if i := strings.LastIndex(s, "/"); i >= 0 {
		body, bass = s[:i], s[i+1:]
		m := bassPattern.FindStringSubmatch(bass)
		if m == nil {
			return model.Chord{}, false
		}
		bass = normalizeNote(m[1], m[2])
	}

	m := rootPattern.FindStringSubmatch(body)
	if m == nil {
		return model.Chord{}, false
	}

	return model.Chord{
		Root:    normalizeNote(m[1], m[2]),
		Quality: m[3],
		Bass:    bass,
	}, true
}

// ExtractAll pulls every bracketed chord out of a document in order,
// skipping spans that classify as markers.
func ExtractAll(text string) []model.Chord {
	var res []model.Chord
	for _, m := range bracketPattern.FindAllStringSubmatch(text, -1) {
		if c, ok := Parse(m[1]); ok {
			res = append(res, c)
		}
	}
	return res
}

// Names flattens parsed chords back to display strings.
func Names(chords []model.Chord) []string {
	res := make([]string, 0, len(chords))
	for _, c := range chords {
		res = append(res, c.String())
	}
	return res
}

package model

// Chord is one parsed bracketed chord annotation. Quality is an opaque
// suffix kept byte-for-byte; only Root and Bass ever get rewritten.
type Chord struct {
	Root    string
	Quality string
	Bass    string // empty unless slash chord
}

func (c Chord) String() string {
	if c.Bass != "" {
		return c.Root + c.Quality + "/" + c.Bass
	}
	return c.Root + c.Quality
}

// Key is a tonal center: a pitch class plus its spelling bias.
type Key struct {
	Semitone  int // 0 = C, normalized to [0,11]
	UseSharps bool
	Name      string // canonical display name, e.g. "F#" or "Bb"
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// KeyDetection is the result of running key detection over a chord list.
// Key is empty when no key could be determined.
type KeyDetection struct {
	Key        string
	Confidence Confidence
	Score      float64 // margin between best and second-best candidate, 0 to 1
}

func (k KeyDetection) Undetermined() bool {
	return k.Key == ""
}

// CapoSuggestion pairs a capo fret with the open-shape key it lets
// the player use.
type CapoSuggestion struct {
	CapoFret  int    `json:"capo_fret"`
	PlayedKey string `json:"played_key"`
}

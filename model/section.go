package model

// SectionType is a canonical song-section label.
type SectionType string

const (
	SectionVerse        SectionType = "Verse"
	SectionChorus       SectionType = "Chorus"
	SectionBridge       SectionType = "Bridge"
	SectionPreChorus    SectionType = "Pre-Chorus"
	SectionTag          SectionType = "Tag"
	SectionIntro        SectionType = "Intro"
	SectionOutro        SectionType = "Outro"
	SectionInterlude    SectionType = "Interlude"
	SectionInstrumental SectionType = "Instrumental"
	SectionEnding       SectionType = "Ending"
	SectionOther        SectionType = "Section"
)

// DetectedSection is one section found during normalization.
type DetectedSection struct {
	Type         SectionType
	Number       int // 0 when the section carries no number
	StartLine    int
	EndLine      int
	Content      string
	AutoDetected bool // true when inferred from block structure, not a marker
}

// NormalizeResult is what section normalization hands back to callers.
type NormalizeResult struct {
	Text               string
	Sections           []DetectedSection
	SectionsNormalized bool // true iff Text differs from the input
	HadExistingMarkers bool
}

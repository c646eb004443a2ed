package section

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/util"
)

// A marker is a line that is nothing but a section name, with optional
// brackets, number and trailing colon: "[V1]", "Chorus:", "[Pre-Chorus 2]".
var markerPattern = regexp.MustCompile(
	`(?i)^\s*\[?\s*` +
		`(v(?:erse)?|c(?:horus)?|b(?:r(?:idge)?)?|p(?:re)?(?:[ -]?c(?:horus)?)?|` +
		`tag|coda|refrain|hook|intro|outro|interlude|instrumental|ending)` +
		`(?:\s*(\d+))?\s*\]?\s*:?\s*$`)

// marker text (lowercased, spaces and hyphens stripped) -> canonical type
var sectionAliases = map[string]model.SectionType{
	"v":            model.SectionVerse,
	"verse":        model.SectionVerse,
	"c":            model.SectionChorus,
	"chorus":       model.SectionChorus,
	"refrain":      model.SectionChorus,
	"hook":         model.SectionChorus,
	"b":            model.SectionBridge,
	"br":           model.SectionBridge,
	"bridge":       model.SectionBridge,
	"p":            model.SectionPreChorus,
	"pc":           model.SectionPreChorus,
	"pchorus":      model.SectionPreChorus,
	"pre":          model.SectionPreChorus,
	"prec":         model.SectionPreChorus,
	"prechorus":    model.SectionPreChorus,
	"tag":          model.SectionTag,
	"coda":         model.SectionTag,
	"intro":        model.SectionIntro,
	"outro":        model.SectionOutro,
	"interlude":    model.SectionInterlude,
	"instrumental": model.SectionInstrumental,
	"ending":       model.SectionEnding,
}

var chordBracket = regexp.MustCompile(`\[[A-Ga-g][^\]]*\]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

type foundMarker struct {
	lineIdx     int
	sectionType model.SectionType
	number      int
}

type block struct {
	content   string
	startLine int
	endLine   int
}

// Normalize canonicalizes the section markers of a document, or infers
// sections from block repetition when there are none. Running it on its
// own output changes nothing.
func Normalize(content string) model.NormalizeResult {
	return NormalizeWithThreshold(content, constants.GetChorusSimilarity())
}

// NormalizeWithThreshold is Normalize with an explicit chorus-similarity
// cutoff instead of the configured one.
func NormalizeWithThreshold(content string, threshold float64) model.NormalizeResult {
	if strings.TrimSpace(content) == "" {
		return model.NormalizeResult{Text: content}
	}
	if len(content) > constants.GetMaxDocumentBytes() {
		return model.NormalizeResult{Text: content}
	}

	lines := strings.Split(content, "\n")
	markers := findMarkers(lines)
	if len(markers) > 0 {
		return processMarkers(content, lines, markers)
	}
	return detectHeuristically(content, threshold)
}

func findMarkers(lines []string) []foundMarker {
	var res []foundMarker
	for i, line := range lines {
		m := markerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		alias := strings.ToLower(m[1])
		alias = strings.ReplaceAll(alias, " ", "")
		alias = strings.ReplaceAll(alias, "-", "")
		sectionType, ok := sectionAliases[alias]
		if !ok {
			// unknown alias, leave the line alone
			continue
		}
		number := 0
		if m[2] != "" {
			number, _ = strconv.Atoi(m[2])
		}
		res = append(res, foundMarker{lineIdx: i, sectionType: sectionType, number: number})
	}
	return res
}

func formatMarker(sectionType model.SectionType, number int) string {
	if number > 0 {
		return fmt.Sprintf("[%v %v]", string(sectionType), number)
	}
	return "[" + string(sectionType) + "]"
}

func processMarkers(content string, lines []string, markers []foundMarker) model.NormalizeResult {
	normalized := make([]string, len(lines))
	copy(normalized, lines)

	var sections []model.DetectedSection
	verseCount := 0

	for i, m := range markers {
		number := m.number
		if number == 0 && m.sectionType == model.SectionVerse {
			// repeated bare [Chorus] means the one chorus repeats, but
			// verses are distinct, so only they get auto-numbered
			verseCount++
			number = verseCount
		} else if number > 0 && m.sectionType == model.SectionVerse {
			verseCount = util.Max(verseCount, number)
		}

		endLine := len(lines)
		if i+1 < len(markers) {
			endLine = markers[i+1].lineIdx
		}

		normalized[m.lineIdx] = formatMarker(m.sectionType, number)
		sections = append(sections, model.DetectedSection{
			Type:      m.sectionType,
			Number:    number,
			StartLine: m.lineIdx,
			EndLine:   endLine,
			Content:   strings.TrimSpace(strings.Join(lines[m.lineIdx+1:endLine], "\n")),
		})
	}

	text := strings.Join(normalized, "\n")
	return model.NormalizeResult{
		Text:               text,
		Sections:           sections,
		SectionsNormalized: text != content,
		HadExistingMarkers: true,
	}
}

func detectHeuristically(content string, threshold float64) model.NormalizeResult {
	blocks := splitBlocks(content)
	if len(blocks) == 0 {
		return model.NormalizeResult{Text: content}
	}

	if len(blocks) == 1 {
		text := "[Verse 1]\n" + content
		return model.NormalizeResult{
			Text: text,
			Sections: []model.DetectedSection{{
				Type:         model.SectionVerse,
				Number:       1,
				StartLine:    0,
				EndLine:      strings.Count(content, "\n") + 1,
				Content:      blocks[0].content,
				AutoDetected: true,
			}},
			SectionsNormalized: true,
		}
	}

	repeated := findRepeatedBlocks(blocks, threshold)

	var sections []model.DetectedSection
	var parts []string
	verseCount := 0

	for i, b := range blocks {
		sectionType := model.SectionVerse
		number := 0
		if repeated[i] {
			sectionType = model.SectionChorus
		} else {
			verseCount++
			number = verseCount
		}

		parts = append(parts, formatMarker(sectionType, number), b.content)
		sections = append(sections, model.DetectedSection{
			Type:         sectionType,
			Number:       number,
			StartLine:    b.startLine,
			EndLine:      b.endLine,
			Content:      b.content,
			AutoDetected: true,
		})
	}

	text := strings.Join(joinMarkerBlocks(parts), "\n\n")
	return model.NormalizeResult{
		Text:               text,
		Sections:           sections,
		SectionsNormalized: text != content,
	}
}

// joinMarkerBlocks pairs each marker with its block so the blank line
// lands between sections, not between a marker and its lyrics.
func joinMarkerBlocks(parts []string) []string {
	var res []string
	for i := 0; i+1 < len(parts); i += 2 {
		res = append(res, parts[i]+"\n"+parts[i+1])
	}
	return res
}

func splitBlocks(content string) []block {
	lines := strings.Split(content, "\n")
	var blocks []block
	var current []string
	blockStart := 0

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, block{
					content:   strings.Join(current, "\n"),
					startLine: blockStart,
					endLine:   i,
				})
				current = nil
			}
			continue
		}
		if len(current) == 0 {
			blockStart = i
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, block{
			content:   strings.Join(current, "\n"),
			startLine: blockStart,
			endLine:   len(lines),
		})
	}
	return blocks
}

func findRepeatedBlocks(blocks []block, threshold float64) map[int]bool {
	repeated := make(map[int]bool)
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if similarity(blocks[i].content, blocks[j].content) >= threshold {
				repeated[i] = true
				repeated[j] = true
			}
		}
	}
	return repeated
}

// similarity is an edit-distance ratio over chord-stripped, lowercased,
// whitespace-collapsed text.
func similarity(text1, text2 string) float64 {
	n1 := normalizeForComparison(text1)
	n2 := normalizeForComparison(text2)
	if n1 == n2 {
		return 1.0
	}
	longest := util.Max(len(n1), len(n2))
	if longest == 0 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(n1, n2)
	return 1.0 - float64(distance)/float64(longest)
}

func normalizeForComparison(text string) string {
	text = chordBracket.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

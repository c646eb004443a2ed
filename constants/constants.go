package constants

import (
	"os"
	"strconv"
)

// Blocks at least this similar get labeled as the same chorus during
// heuristic section detection.
const DefaultChorusSimilarity = 0.85

// Guard against pathologically large documents before tokenizing.
const DefaultMaxDocumentBytes = 1 << 20

func GetChorusSimilarity() float64 {
	raw := os.Getenv("CHORUS_SIMILARITY")
	if raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 && v <= 1 {
			return v
		}
	}
	return DefaultChorusSimilarity
}

func GetMaxDocumentBytes() int {
	raw := os.Getenv("MAX_DOCUMENT_BYTES")
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return DefaultMaxDocumentBytes
}

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

package model

type TransposeRequestBody struct {
	Text    string `json:"text"`
	FromKey string `json:"from_key"`
	ToKey   string `json:"to_key"`
}

type TransposeResponse struct {
	Text string `json:"text"`
}

type DetectKeyRequestBody struct {
	Chords []string `json:"chords"`
}

type DetectKeyResponse struct {
	Key        string  `json:"key"`
	Confidence string  `json:"confidence"`
	Score      float64 `json:"score"`
}

type NormalizeRequestBody struct {
	Text string `json:"text"`
}

type NormalizeResponse struct {
	Text               string `json:"text"`
	SectionsNormalized bool   `json:"sections_normalized"`
}

type CapoResponse struct {
	Difficult   bool             `json:"difficult"`
	Suggestions []CapoSuggestion `json:"suggestions"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

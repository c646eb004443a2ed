//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordshift/cmd"
	"github.com/jsphweid/chordshift/model"
	"github.com/stretchr/testify/assert"
)

func doJSON(t *testing.T, method, path string, body any, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err.Error())
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	if out != nil {
		respBody, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(respBody, out); err != nil {
			panic(err.Error())
		}
	}
	return resp
}

func TestTransposeE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.TransposeResponse
	resp := doJSON(t, http.MethodPost, "/transpose", model.TransposeRequestBody{
		Text:    "[G]Test [D]line",
		FromKey: "G",
		ToKey:   "A",
	}, &res)

	assert.Equal(200, resp.StatusCode)
	assert.Equal("[A]Test [E]line", res.Text)
}

func TestDetectKeyE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.DetectKeyResponse
	resp := doJSON(t, http.MethodPost, "/detect-key", model.DetectKeyRequestBody{
		Chords: []string{"C", "F", "G", "C", "Am", "F", "G", "C"},
	}, &res)

	assert.Equal(200, resp.StatusCode)
	assert.Equal("C", res.Key)
	assert.Equal("high", res.Confidence)
}

func TestNormalizeE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.NormalizeResponse
	resp := doJSON(t, http.MethodPost, "/normalize", model.NormalizeRequestBody{
		Text: "[V1]\nfirst verse lyrics",
	}, &res)

	assert.Equal(200, resp.StatusCode)
	assert.True(res.SectionsNormalized)
	assert.Contains(res.Text, "[Verse 1]")
}

func TestCapoE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.CapoResponse
	resp := doJSON(t, http.MethodGet, "/capo/F", nil, &res)

	assert.Equal(200, resp.StatusCode)
	assert.True(res.Difficult)
	assert.NotEmpty(res.Suggestions)
	assert.Equal(model.CapoSuggestion{CapoFret: 1, PlayedKey: "E"}, res.Suggestions[0])
}

func TestCapoEasyKeyE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.CapoResponse
	resp := doJSON(t, http.MethodGet, "/capo/G", nil, &res)

	assert.Equal(200, resp.StatusCode)
	assert.False(res.Difficult)
}

func TestCapoInvalidKeyE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.ErrorResponse
	resp := doJSON(t, http.MethodGet, "/capo/H", nil, &res)

	assert.Equal(400, resp.StatusCode)
	assert.NotEmpty(res.Error)
}

func TestTransposeBadBodyE2E(t *testing.T) {
	assert := assert.New(t)
	req := httptest.NewRequest(http.MethodPost, "/transpose", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)
	assert.Equal(400, w.Result().StatusCode)
}

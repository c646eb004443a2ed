package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordshift/capo"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/keydetect"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/pitch"
	"github.com/jsphweid/chordshift/section"
	"github.com/jsphweid/chordshift/transpose"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves transposition, key detection, normalization and capo suggestions over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func readJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return false
	}
	if err := json.Unmarshal(reqBody, v); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return false
	}
	return true
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if !readJSONBody(w, r, &input) {
		return
	}
	if len(input.Text) > constants.GetMaxDocumentBytes() {
		writeError(w, 400, "Document too large")
		return
	}
	res := model.TransposeResponse{Text: transpose.Document(input.Text, input.FromKey, input.ToKey)}
	json.NewEncoder(w).Encode(res)
}

func HandleDetectKey(w http.ResponseWriter, r *http.Request) {
	var input model.DetectKeyRequestBody
	if !readJSONBody(w, r, &input) {
		return
	}
	result := keydetect.Detect(input.Chords)
	res := model.DetectKeyResponse{
		Key:        result.Key,
		Confidence: string(result.Confidence),
		Score:      result.Score,
	}
	json.NewEncoder(w).Encode(res)
}

func HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var input model.NormalizeRequestBody
	if !readJSONBody(w, r, &input) {
		return
	}
	if len(input.Text) > constants.GetMaxDocumentBytes() {
		writeError(w, 400, "Document too large")
		return
	}
	result := section.Normalize(input.Text)
	res := model.NormalizeResponse{
		Text:               result.Text,
		SectionsNormalized: result.SectionsNormalized,
	}
	json.NewEncoder(w).Encode(res)
}

func HandleCapo(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if _, err := pitch.ParseKey(key); err != nil {
		writeError(w, 400, err.Error())
		return
	}
	res := model.CapoResponse{
		Difficult:   capo.IsDifficultKey(key),
		Suggestions: capo.SuggestPositions(key),
	}
	if res.Suggestions == nil {
		res.Suggestions = []model.CapoSuggestion{}
	}
	json.NewEncoder(w).Encode(res)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/detect-key", HandleDetectKey).Methods("POST")
	router.HandleFunc("/normalize", HandleNormalize).Methods("POST")
	router.HandleFunc("/capo/{key}", HandleCapo).Methods("GET")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":8080", handler))
}

package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/preset"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves presets over HTTP",
	Long: `Serves the chord catalog and its presets, generated on request:
  GET /chords
  GET /chords/{name}
  GET /chords/{name}/{file}.m8i`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Printf("listening on %s", addr)
		return http.ListenAndServe(addr, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", HandleListChords).Methods("GET")
	router.HandleFunc("/chords/{name}", HandleGetChord).Methods("GET")
	router.HandleFunc("/chords/{name}/{file}", HandleGetPreset).Methods("GET")
	return cors.Default().Handler(router)
}

// ids stay the same across runs and machines
func chordID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("chordgen/"+name)).String()
}

func summarize(c model.ChordDefinition) model.ChordSummary {
	var files []string
	for _, p := range preset.Presets(c) {
		files = append(files, p.FileName)
	}
	return model.ChordSummary{
		ID:      chordID(c.Name),
		Name:    c.Name,
		Key:     chord.CreateChordKey(c.Offsets),
		Offsets: c.Offsets,
		Presets: files,
	}
}

func describe(c model.ChordDefinition) model.ChordDetail {
	detail := model.ChordDetail{ChordSummary: summarize(c)}
	voicings := chord.Voicings(c)
	for i, p := range preset.Presets(c) {
		s := model.PresetSummary{
			File: p.FileName,
			Name: p.Instrument.InstrumentName(),
			Kind: p.Instrument.Kind().String(),
		}
		switch inst := p.Instrument.(type) {
		case *m8.FMSynth:
			s.Offsets = voicings[i].Offsets
			s.Algorithm = uint8(inst.Algo)
			for _, op := range inst.Operators {
				s.Operators = append(s.Operators, model.OperatorSummary{
					Shape: uint8(op.Shape),
					Ratio: op.Ratio,
					Fine:  op.RatioFine,
				})
			}
		case *m8.HyperSynth:
			s.Offsets = c.Offsets
			for _, entry := range inst.Chords {
				s.Table = append(s.Table, append([]uint8{entry.Mask}, entry.Offsets[:]...))
			}
		}
		detail.Voicings = append(detail.Voicings, s)
	}
	return detail
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func HandleListChords(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ChordSummary, 0)
	for _, c := range chord.Catalog() {
		res = append(res, summarize(c))
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleGetChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	c, ok := chord.Find(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chord %q", name))
		return
	}
	writeJSON(w, http.StatusOK, describe(c))
}

func HandleGetPreset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, ok := chord.Find(vars["name"])
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chord %q", vars["name"]))
		return
	}

	for _, p := range preset.Presets(c) {
		if p.FileName != vars["file"] {
			continue
		}
		data, err := preset.Render(m8.NewInstrumentWriter(), p)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", p.FileName))
		w.Write(data)
		return
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("no preset %q for chord %s", vars["file"], c.Name))
}

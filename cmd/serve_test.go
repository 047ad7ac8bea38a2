package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
	"github.com/stretchr/testify/assert"
)

func get(t *testing.T, path string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func TestListChords(t *testing.T) {
	resp := get(t, "/chords")
	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))

	var chords []model.ChordSummary
	assert.NoError(json.NewDecoder(resp.Body).Decode(&chords))
	assert.Len(chords, 15)
	assert.Equal("MAJ", chords[0].Name)
	assert.Equal("0-4-7", chords[0].Key)
	assert.Equal([]string{"MAJ.m8i", "MAJ_INV1.m8i", "MAJ_INV2.m8i", "MAJ_HS.m8i"}, chords[0].Presets)
	assert.Equal(chordID("MAJ"), chords[0].ID)
	assert.NotEqual(chords[0].ID, chords[1].ID)
}

func TestGetChord(t *testing.T) {
	resp := get(t, "/chords/MAJ")
	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var detail model.ChordDetail
	assert.NoError(json.NewDecoder(resp.Body).Decode(&detail))
	assert.Len(detail.Voicings, 4)

	root := detail.Voicings[0]
	assert.Equal("FMSYNTH", root.Kind)
	assert.Equal(uint8(0x08), root.Algorithm)
	// operator D is the root, operator A the unused modulator
	assert.Equal(model.OperatorSummary{Shape: uint8(m8.SIN), Ratio: 1, Fine: 0}, root.Operators[0])
	assert.Equal(model.OperatorSummary{Shape: uint8(m8.SAW), Ratio: 1, Fine: 49}, root.Operators[1])

	assert.Equal([]int{12, 16, 7}, detail.Voicings[2].Offsets)

	hs := detail.Voicings[3]
	assert.Equal("HYPERSYNTH", hs.Kind)
	assert.Len(hs.Table, 16)
	assert.Equal([]uint8{0xFF, 0, 4, 7, 0, 4, 7, 0}, hs.Table[0])
}

func TestGetPreset(t *testing.T) {
	resp := get(t, "/chords/POW/POW_HS.m8i")
	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("application/octet-stream", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	assert.NoError(err)
	f, err := m8.Read(data)
	assert.NoError(err)
	assert.Equal(m8.KindHyperSynth, f.Instrument.Kind())
	assert.Equal("POW", f.Instrument.InstrumentName())
}

func TestNotFound(t *testing.T) {
	for _, path := range []string{"/chords/SUS4", "/chords/SUS4/SUS4.m8i", "/chords/POW/POW_INV2.m8i"} {
		t.Run(path, func(t *testing.T) {
			resp := get(t, path)
			assert := assert.New(t)
			assert.Equal(http.StatusNotFound, resp.StatusCode)

			var e model.ErrorResponse
			assert.NoError(json.NewDecoder(resp.Body).Decode(&e))
			assert.NotEmpty(e.Error)
		})
	}
}

package progress

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNilReporterDiscards(t *testing.T) {
	var r *Reporter
	assert.NotPanics(t, func() {
		r.Chord(1, 2, "MAJ")
		r.Wrote("MAJ/MAJ.m8i", 10)
		r.Done(1, "out")
		r.Error(errors.New("boom"))
	})
}

func TestWroteOnlyWhenVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	NewReporter(&quiet, false, false).Wrote("MAJ/MAJ.m8i", 10)
	NewReporter(&loud, true, false).Wrote("MAJ/MAJ.m8i", 10)

	assert := assert.New(t)
	assert.Empty(quiet.String())
	assert.Contains(loud.String(), "MAJ/MAJ.m8i (10 bytes)")
}

func TestChordHeader(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out, false, false).Chord(3, 15, "DOM7")
	assert.Contains(t, out.String(), "[3/15] DOM7")
}

func TestErrorShowsStackInDebug(t *testing.T) {
	var plain, debug bytes.Buffer
	err := errors.New("disk full")
	NewReporter(&plain, false, false).Error(err)
	NewReporter(&debug, false, true).Error(err)

	assert := assert.New(t)
	assert.Contains(plain.String(), "Error: disk full")
	assert.NotContains(plain.String(), "progress_test.go")
	assert.Contains(debug.String(), "progress_test.go")
}

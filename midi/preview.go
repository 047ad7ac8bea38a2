package midi

import (
	"bytes"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
	gm "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

const (
	ticksPerBeat = 960
	velocity     = 100
	channel      = 0
	maxKey       = 127
)

// Preview renders c as a two track MIDI file: the root and each inversion
// as block chords, then the active slots of every chord table entry. Each
// chord lasts one beat.
func Preview(c model.ChordDefinition, baseNote uint8) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)

	var voicings smf.Track
	voicings.Add(0, smf.MetaTrackSequenceName(c.Name))
	for _, v := range chord.Voicings(c) {
		addBlock(&voicings, keys(baseNote, v.Offsets))
	}
	voicings.Close(0)
	s.Add(voicings)

	var table smf.Track
	table.Add(0, smf.MetaTrackSequenceName(chord.HyperSynthName(c.Name)))
	filled := chord.FilledSlots(c.Len())
	for _, entry := range chord.ChordTable(c) {
		addBlock(&table, keys(baseNote, activeOffsets(entry, filled)))
	}
	table.Close(0)
	s.Add(table)

	return s
}

func PreviewBytes(c model.ChordDefinition, baseNote uint8) ([]byte, error) {
	s := Preview(c, baseNote)
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// activeOffsets reads only the first filled slots; the mask alone can't
// tell an empty slot 6 from a used one.
func activeOffsets(entry m8.Chord, filled int) []int {
	var res []int
	for slot := 0; slot < filled && slot < len(entry.Offsets); slot++ {
		if entry.Mask&(1<<slot) != 0 {
			res = append(res, int(entry.Offsets[slot]))
		}
	}
	return res
}

// keys drops duplicates and anything above the MIDI range
func keys(base uint8, offsets []int) []uint8 {
	var res []uint8
	for _, o := range offsets {
		k := int(base) + o
		if k <= maxKey {
			res = append(res, uint8(k))
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

func addBlock(t *smf.Track, notes []uint8) {
	for _, k := range notes {
		t.Add(0, gm.NoteOn(channel, k, velocity))
	}
	for i, k := range notes {
		var delta uint32
		if i == 0 {
			delta = ticksPerBeat
		}
		t.Add(delta, gm.NoteOff(channel, k))
	}
}

package chord

import (
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
)

// the mask bits above the seven offsets are always on
const baseMask = 0xC0

// tableState is the chord table encoder between two entries. It is
// copied, never shared, so each step can be checked on its own.
type tableState struct {
	offsets [constants.ChordSlots]int
	n       int
	cursor  int
}

func newTableState(c model.ChordDefinition) tableState {
	s := tableState{n: c.Len(), cursor: constants.MutateCursorSentinel}
	if s.n > constants.ChordSlots {
		s.n = constants.ChordSlots
	}
	copy(s.offsets[:], c.Offsets)
	return s
}

// step raises the offset under the cursor by an octave and advances. A
// cursor past the chord wraps to 0 without raising anything.
func (s tableState) step() tableState {
	if s.cursor >= s.n {
		s.cursor = 0
		return s
	}
	s.offsets[s.cursor] += constants.Octave
	s.cursor++
	return s
}

// entry repeats the offsets over as many whole copies as fit in the
// slots; the remaining slots stay empty and disabled.
func (s tableState) entry() m8.Chord {
	ch := m8.Chord{Mask: baseMask}
	if s.n == 0 {
		return ch
	}
	filled := FilledSlots(s.n)
	for slot := 0; slot < filled; slot++ {
		ch.Offsets[slot] = uint8(s.offsets[slot%s.n])
		ch.Mask |= 1 << slot
	}
	return ch
}

// FilledSlots is the number of table slots holding offsets for a chord of
// n notes. Bit 6 of an entry's mask is set even when slot 6 is not.
func FilledSlots(n int) int {
	if n <= 0 {
		return 0
	}
	if n > constants.ChordSlots {
		n = constants.ChordSlots
	}
	return (constants.ChordSlots / n) * n
}

func tableStates(c model.ChordDefinition) [constants.TableEntries]tableState {
	var res [constants.TableEntries]tableState
	s := newTableState(c)
	for i := range res {
		s = s.step()
		res[i] = s
	}
	return res
}

// ChordTable encodes progressively widened voicings of c: every entry
// after a wrap raises one more offset by an octave.
func ChordTable(c model.ChordDefinition) [constants.TableEntries]m8.Chord {
	var table [constants.TableEntries]m8.Chord
	for i, s := range tableStates(c) {
		table[i] = s.entry()
	}
	return table
}

// DefaultChord leaves slot 0 to the implicit root and stores the
// unmodified offsets after it.
func DefaultChord(c model.ChordDefinition) [constants.ChordSlots]uint8 {
	var res [constants.ChordSlots]uint8
	for i, o := range c.Offsets {
		if i+1 >= constants.ChordSlots {
			break
		}
		res[i+1] = uint8(o)
	}
	return res
}

// HyperSynth keeps the chord's own name; only the file name carries the
// _HS suffix.
func HyperSynth(c model.ChordDefinition) *m8.HyperSynth {
	return &m8.HyperSynth{
		Name:         c.Name,
		Transpose:    true,
		TableTick:    1,
		SynthParams:  SynthParams(),
		Scale:        0x00,
		DefaultChord: DefaultChord(c),
		Shift:        0x80,
		Swarm:        0,
		Width:        0,
		SubOsc:       0x80,
		Chords:       ChordTable(c),
	}
}

package chord

import (
	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
)

// SynthParams is shared by every generated preset. None of it depends on
// the chord.
func SynthParams() m8.SynthParams {
	ahd := m8.AHDEnv{
		Dest:   0,
		Amount: 0xFF,
		Attack: 0,
		Hold:   0,
		Decay:  0x80,
	}

	lfo := m8.LFO{
		Shape:       m8.LfoTri,
		Dest:        0,
		TriggerMode: m8.LfoFree,
		Freq:        0x10,
		Amount:      0xFF,
		Retrigger:   0,
	}

	return m8.SynthParams{
		Volume:       0x00,
		Pitch:        0,
		FineTune:     0x80,
		FilterType:   0,
		FilterCutoff: 0xFF,
		FilterRes:    0x00,
		Amp:          0,
		Limit:        m8.LimitType(0),
		MixerPan:     0x80,
		MixerDry:     0xC0,
		MixerMFX:     0,
		MixerDelay:   0,
		MixerReverb:  0x00,
		AssociatedEQ: 0x80,
		Mods:         [4]m8.Mod{ahd, ahd, lfo, lfo},
	}
}

// FMSynth builds the preset for one voicing. Operator A plays the highest
// offset slot, operator D the root.
func FMSynth(c model.ChordDefinition) *m8.FMSynth {
	op := func(i int) m8.Operator {
		if i < c.Len() {
			return VoiceOperator(c.Offsets[i])
		}
		return ModulatorOperator()
	}

	return &m8.FMSynth{
		Name:        c.Name,
		Transpose:   true,
		TableTick:   1,
		SynthParams: SynthParams(),
		Algo:        Algorithm(c.Len()),
		Operators:   [4]m8.Operator{op(3), op(2), op(1), op(0)},
	}
}

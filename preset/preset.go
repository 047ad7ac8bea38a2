package preset

import (
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
	"github.com/pkg/errors"
)

// Preset is one file of a chord's preset set.
type Preset struct {
	FileName   string
	Instrument m8.Instrument
}

// Presets lists the files generated for c in write order: the root
// position, each inversion, then the chord table variant.
func Presets(c model.ChordDefinition) []Preset {
	var res []Preset
	for _, v := range chord.Voicings(c) {
		res = append(res, Preset{
			FileName:   v.Name + constants.PresetExt,
			Instrument: chord.FMSynth(v),
		})
	}
	res = append(res, Preset{
		FileName:   chord.HyperSynthName(c.Name) + constants.PresetExt,
		Instrument: chord.HyperSynth(c),
	})
	return res
}

func FormatVersion() m8.Version {
	return m8.Version{
		Major: constants.FormatMajor,
		Minor: constants.FormatMinor,
		Patch: constants.FormatPatch,
	}
}

func Wrap(inst m8.Instrument) *m8.InstrumentFile {
	return &m8.InstrumentFile{
		Instrument: inst,
		Table:      m8.DefaultTable(),
		Version:    FormatVersion(),
	}
}

func Render(s Serializer, p Preset) ([]byte, error) {
	data, err := s.Serialize(Wrap(p.Instrument))
	if err != nil {
		return nil, errors.WithStack(&SerializeError{Name: p.Instrument.InstrumentName(), Err: err})
	}
	return data, nil
}

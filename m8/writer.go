package m8

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const nameLength = 12

var magic = [10]byte{'M', '8', 'V', 'E', 'R', 'S', 'I', 'O', 'N', 0}

var (
	ErrNameTooLong    = errors.New("instrument name longer than 12 bytes")
	ErrBadMagic       = errors.New("not an m8 file")
	ErrUnsupported    = errors.New("unsupported instrument kind")
	ErrTruncated      = errors.New("truncated instrument file")
	ErrUnknownModKind = errors.New("unknown mod kind")
)

type header struct {
	Magic      [10]byte
	// minor in the high nibble, patch in the low one
	MinorPatch uint8
	Major      uint8
	_          [2]byte
}

// everything after the kind-specific block, before the mods
type mixer struct {
	FilterType   uint8
	FilterCutoff uint8
	FilterRes    uint8
	Amp          uint8
	Limit        LimitType
	MixerPan     uint8
	MixerDry     uint8
	MixerMFX     uint8
	MixerDelay   uint8
	MixerReverb  uint8
	AssociatedEQ uint8
}

type hyperSynthVoice struct {
	DefaultChord [7]uint8
	Scale        uint8
	Shift        uint8
	Swarm        uint8
	Width        uint8
	SubOsc       uint8
}

type fmMods struct {
	Mod1 uint8
	Mod2 uint8
	Mod3 uint8
	Mod4 uint8
}

// InstrumentWriter encodes instrument files. It holds no state and can be
// shared.
type InstrumentWriter struct{}

func NewInstrumentWriter() *InstrumentWriter {
	return &InstrumentWriter{}
}

func (w *InstrumentWriter) Serialize(f *InstrumentFile) ([]byte, error) {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, header{
		Magic:      magic,
		MinorPatch: f.Version.Minor<<4 | f.Version.Patch&0x0F,
		Major:      f.Version.Major,
	})

	switch inst := f.Instrument.(type) {
	case *FMSynth:
		err := writeCommon(buf, KindFMSynth, inst.Name, inst.Transpose, inst.TableTick, inst.SynthParams)
		if err != nil {
			return nil, err
		}
		binary.Write(buf, binary.LittleEndian, inst.Algo)
		binary.Write(buf, binary.LittleEndian, inst.Operators)
		binary.Write(buf, binary.LittleEndian, fmMods{inst.Mod1, inst.Mod2, inst.Mod3, inst.Mod4})
	case *HyperSynth:
		err := writeCommon(buf, KindHyperSynth, inst.Name, inst.Transpose, inst.TableTick, inst.SynthParams)
		if err != nil {
			return nil, err
		}
		binary.Write(buf, binary.LittleEndian, hyperSynthVoice{
			DefaultChord: inst.DefaultChord,
			Scale:        inst.Scale,
			Shift:        inst.Shift,
			Swarm:        inst.Swarm,
			Width:        inst.Width,
			SubOsc:       inst.SubOsc,
		})
		binary.Write(buf, binary.LittleEndian, inst.Chords)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "%T", f.Instrument)
	}

	if err := writeTail(buf, instrumentParams(f.Instrument)); err != nil {
		return nil, err
	}
	binary.Write(buf, binary.LittleEndian, f.Table)
	return buf.Bytes(), nil
}

func instrumentParams(inst Instrument) SynthParams {
	switch inst := inst.(type) {
	case *FMSynth:
		return inst.SynthParams
	case *HyperSynth:
		return inst.SynthParams
	}
	return SynthParams{}
}

func writeCommon(buf *bytes.Buffer, kind Kind, name string, transpose bool, tableTick uint8, p SynthParams) error {
	if len(name) > nameLength {
		return errors.Wrapf(ErrNameTooLong, "%q", name)
	}
	var rawName [nameLength]byte
	copy(rawName[:], name)

	var flags uint8
	if transpose {
		flags = 1
	}

	buf.WriteByte(byte(kind))
	buf.Write(rawName[:])
	buf.Write([]byte{flags, tableTick, p.Volume, p.Pitch, p.FineTune})
	return nil
}

func writeTail(buf *bytes.Buffer, p SynthParams) error {
	binary.Write(buf, binary.LittleEndian, mixer{
		FilterType:   p.FilterType,
		FilterCutoff: p.FilterCutoff,
		FilterRes:    p.FilterRes,
		Amp:          p.Amp,
		Limit:        p.Limit,
		MixerPan:     p.MixerPan,
		MixerDry:     p.MixerDry,
		MixerMFX:     p.MixerMFX,
		MixerDelay:   p.MixerDelay,
		MixerReverb:  p.MixerReverb,
		AssociatedEQ: p.AssociatedEQ,
	})
	for i, m := range p.Mods {
		slot, err := encodeMod(m)
		if err != nil {
			return errors.Wrapf(err, "mod %d", i+1)
		}
		buf.Write(slot[:])
	}
	return nil
}

// A mod slot is 6 bytes: kind and destination share the first byte.
// An empty slot is written as a silent AHD envelope.
func encodeMod(m Mod) ([6]byte, error) {
	switch m := m.(type) {
	case nil:
		return [6]byte{}, nil
	case AHDEnv:
		return [6]byte{byte(ModAHDEnv)<<4 | m.Dest&0x0F, m.Amount, m.Attack, m.Hold, m.Decay, 0}, nil
	case LFO:
		return [6]byte{byte(ModLFO)<<4 | m.Dest&0x0F, byte(m.Shape), byte(m.TriggerMode), m.Freq, m.Amount, m.Retrigger}, nil
	}
	return [6]byte{}, errors.Wrapf(ErrUnknownModKind, "%T", m)
}

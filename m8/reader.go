package m8

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type decoder struct {
	r   *bytes.Reader
	err error
}

func (d *decoder) read(v any) {
	if d.err != nil {
		return
	}
	if err := binary.Read(d.r, binary.LittleEndian, v); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncated
		}
		d.err = errors.WithStack(err)
	}
}

// Read decodes an instrument file produced by InstrumentWriter.
func Read(data []byte) (*InstrumentFile, error) {
	d := &decoder{r: bytes.NewReader(data)}

	var h header
	d.read(&h)
	if d.err != nil {
		return nil, d.err
	}
	if h.Magic != magic {
		return nil, ErrBadMagic
	}

	var f InstrumentFile
	f.Version = Version{Major: h.Major, Minor: h.MinorPatch >> 4, Patch: h.MinorPatch & 0x0F}

	var kind Kind
	var rawName [nameLength]byte
	var common [5]uint8
	d.read(&kind)
	d.read(&rawName)
	d.read(&common)
	if d.err != nil {
		return nil, d.err
	}

	name := strings.TrimRight(string(rawName[:]), "\x00")
	transpose := common[0]&1 == 1
	tableTick := common[1]
	params := SynthParams{Volume: common[2], Pitch: common[3], FineTune: common[4]}

	switch kind {
	case KindFMSynth:
		fm := &FMSynth{Name: name, Transpose: transpose, TableTick: tableTick}
		var mods fmMods
		d.read(&fm.Algo)
		d.read(&fm.Operators)
		d.read(&mods)
		fm.Mod1, fm.Mod2, fm.Mod3, fm.Mod4 = mods.Mod1, mods.Mod2, mods.Mod3, mods.Mod4
		fm.SynthParams = d.readTail(params)
		f.Instrument = fm
	case KindHyperSynth:
		hs := &HyperSynth{Name: name, Transpose: transpose, TableTick: tableTick}
		var voice hyperSynthVoice
		d.read(&voice)
		d.read(&hs.Chords)
		hs.DefaultChord = voice.DefaultChord
		hs.Scale, hs.Shift, hs.Swarm, hs.Width, hs.SubOsc = voice.Scale, voice.Shift, voice.Swarm, voice.Width, voice.SubOsc
		hs.SynthParams = d.readTail(params)
		f.Instrument = hs
	default:
		return nil, errors.Wrapf(ErrUnsupported, "kind 0x%02X", uint8(kind))
	}

	d.read(&f.Table)
	if d.err != nil {
		return nil, d.err
	}
	return &f, nil
}

func (d *decoder) readTail(p SynthParams) SynthParams {
	var m mixer
	d.read(&m)
	p.FilterType, p.FilterCutoff, p.FilterRes, p.Amp, p.Limit = m.FilterType, m.FilterCutoff, m.FilterRes, m.Amp, m.Limit
	p.MixerPan, p.MixerDry, p.MixerMFX, p.MixerDelay, p.MixerReverb = m.MixerPan, m.MixerDry, m.MixerMFX, m.MixerDelay, m.MixerReverb
	p.AssociatedEQ = m.AssociatedEQ

	for i := range p.Mods {
		var slot [6]byte
		d.read(&slot)
		if d.err != nil {
			return p
		}
		mod, err := decodeMod(slot)
		if err != nil {
			d.err = errors.Wrapf(err, "mod %d", i+1)
			return p
		}
		p.Mods[i] = mod
	}
	return p
}

func decodeMod(slot [6]byte) (Mod, error) {
	dest := slot[0] & 0x0F
	switch ModKind(slot[0] >> 4) {
	case ModAHDEnv:
		return AHDEnv{Dest: dest, Amount: slot[1], Attack: slot[2], Hold: slot[3], Decay: slot[4]}, nil
	case ModLFO:
		return LFO{
			Dest:        dest,
			Shape:       LfoShape(slot[1]),
			TriggerMode: LfoTriggerMode(slot[2]),
			Freq:        slot[3],
			Amount:      slot[4],
			Retrigger:   slot[5],
		}, nil
	}
	return nil, errors.Wrapf(ErrUnknownModKind, "0x%X", slot[0]>>4)
}

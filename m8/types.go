// Package m8 holds the instrument records consumed by the M8 tracker and
// the codec that turns them into .m8i files.
package m8

type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

type Kind uint8

const (
	KindFMSynth    Kind = 0x04
	KindHyperSynth Kind = 0x05
)

func (k Kind) String() string {
	switch k {
	case KindFMSynth:
		return "FMSYNTH"
	case KindHyperSynth:
		return "HYPERSYNTH"
	}
	return "UNKNOWN"
}

type FMWave uint8

const (
	SIN FMWave = iota
	SW2
	SW3
	SW4
	SW5
	SW6
	TRI
	SAW
	SQR
	PUL
	IMP
	NOI
)

type FmAlgo uint8

type LimitType uint8

type LfoShape uint8

const (
	LfoTri LfoShape = iota
	LfoSin
	LfoRampDown
	LfoRampUp
	LfoExpDown
	LfoExpUp
	LfoSquareDown
	LfoSquareUp
	LfoRandom
	LfoDrunk
)

type LfoTriggerMode uint8

const (
	LfoFree LfoTriggerMode = iota
	LfoRetrig
	LfoHold
	LfoOnce
)

type ModKind uint8

const (
	ModAHDEnv ModKind = 0
	ModLFO    ModKind = 3
)

// Mod is one of the four modulation slots of an instrument.
type Mod interface {
	Kind() ModKind
}

type AHDEnv struct {
	Dest   uint8
	Amount uint8
	Attack uint8
	Hold   uint8
	Decay  uint8
}

func (AHDEnv) Kind() ModKind { return ModAHDEnv }

type LFO struct {
	Shape       LfoShape
	Dest        uint8
	TriggerMode LfoTriggerMode
	Freq        uint8
	Amount      uint8
	Retrigger   uint8
}

func (LFO) Kind() ModKind { return ModLFO }

type SynthParams struct {
	Volume       uint8
	Pitch        uint8
	FineTune     uint8
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
	Mods         [4]Mod
}

// Operator field order is the on-disk order.
type Operator struct {
	Shape     FMWave
	Ratio     uint8
	RatioFine uint8
	Level     uint8
	Feedback  uint8
	Retrigger uint8
	ModA      uint8
	ModB      uint8
}

type FMSynth struct {
	Number      uint8
	Name        string
	Transpose   bool
	TableTick   uint8
	SynthParams SynthParams
	Algo        FmAlgo
	Operators   [4]Operator
	Mod1        uint8
	Mod2        uint8
	Mod3        uint8
	Mod4        uint8
}

// Chord is one entry of a hypersynth chord table. Mask bit n enables
// Offsets[n].
type Chord struct {
	Mask    uint8
	Offsets [7]uint8
}

type HyperSynth struct {
	Number       uint8
	Name         string
	Transpose    bool
	TableTick    uint8
	SynthParams  SynthParams
	Scale        uint8
	DefaultChord [7]uint8
	Shift        uint8
	Swarm        uint8
	Width        uint8
	SubOsc       uint8
	Chords       [16]Chord
}

// Instrument is either *FMSynth or *HyperSynth.
type Instrument interface {
	Kind() Kind
	InstrumentName() string
}

func (s *FMSynth) Kind() Kind { return KindFMSynth }
func (s *FMSynth) InstrumentName() string { return s.Name }
func (s *HyperSynth) Kind() Kind { return KindHyperSynth }
func (s *HyperSynth) InstrumentName() string { return s.Name }

type FX struct {
	Command uint8
	Value   uint8
}

type TableStep struct {
	Transpose uint8
	Velocity  uint8
	Fx        [3]FX
}

type Table struct {
	Steps [16]TableStep
}

// FXNone marks an empty fx column.
const FXNone = 0xFF

func DefaultTable() Table {
	var t Table
	for i := range t.Steps {
		t.Steps[i].Velocity = 0xFF
		for j := range t.Steps[i].Fx {
			t.Steps[i].Fx[j].Command = FXNone
		}
	}
	return t
}

// InstrumentFile is everything written to one .m8i file.
type InstrumentFile struct {
	Instrument Instrument
	Table      Table
	Version    Version
}

package chord

import (
	"math"

	"github.com/jsphweid/chordgen/m8"
)

const operatorLevel = 0x80

// Quantize turns a semitone offset into an FM ratio and fine tune in
// hundredths. Both parts are truncated, so the pitch is only approximate.
// Offsets above 95 saturate the ratio at 255.
func Quantize(offset int) (ratio uint8, fine uint8) {
	freq := math.Pow(2, float64(offset)/12.0)
	whole := math.Floor(freq)
	return uint8(math.Min(whole, math.MaxUint8)), uint8(int((freq - whole) * 100.0))
}

func VoiceOperator(offset int) m8.Operator {
	ratio, fine := Quantize(offset)
	return m8.Operator{
		Shape:     m8.SAW,
		Ratio:     ratio,
		RatioFine: fine,
		Level:     operatorLevel,
	}
}

// ModulatorOperator fills an operator slot that has no chord note. The
// algorithms picked by Algorithm never route it to the output.
func ModulatorOperator() m8.Operator {
	return m8.Operator{
		Shape:     m8.SIN,
		Ratio:     0x01,
		RatioFine: 0x00,
		Level:     operatorLevel,
	}
}

func Algorithm(voices int) m8.FmAlgo {
	switch voices {
	case 4:
		return m8.FmAlgo(0x0B)
	case 3:
		return m8.FmAlgo(0x08)
	case 2:
		return m8.FmAlgo(0x07)
	}
	return m8.FmAlgo(0x00)
}

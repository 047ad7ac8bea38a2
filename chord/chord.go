package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/model"
	"golang.org/x/exp/slices"
)

// CreateChordKey renders offsets as a sorted "0-4-7" style key. The input
// is left untouched.
func CreateChordKey(offsets []int) string {
	sorted := slices.Clone(offsets)
	sort.Ints(sorted)
	var res string
	for i, o := range sorted {
		res += fmt.Sprintf("%v", o)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func InversionName(name string, inversion int) string {
	return fmt.Sprintf("%s%s%d", name, constants.InversionSuffix, inversion)
}

func HyperSynthName(name string) string {
	return name + constants.HyperSynthSuffix
}

// Inversions derives the N-1 inversions of an N note chord. Each one
// raises the next lowest offset by an octave on top of the previous
// inversion.
func Inversions(c model.ChordDefinition) []model.ChordDefinition {
	var res []model.ChordDefinition
	working := c.Clone()
	for k := 0; k < c.Len()-1; k++ {
		working.Offsets[k] += constants.Octave
		inv := working.Clone()
		inv.Name = InversionName(c.Name, k+1)
		res = append(res, inv)
	}
	return res
}

// Voicings is the root position followed by every inversion.
func Voicings(c model.ChordDefinition) []model.ChordDefinition {
	return append([]model.ChordDefinition{c.Clone()}, Inversions(c)...)
}

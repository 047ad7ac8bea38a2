package model

import "golang.org/x/exp/slices"

// ChordDefinition is a named set of semitone offsets from an implicit root.
type ChordDefinition struct {
	Name    string
	Offsets []int
}

func (c ChordDefinition) Len() int {
	return len(c.Offsets)
}

// Clone returns a copy that shares no storage with c.
func (c ChordDefinition) Clone() ChordDefinition {
	return ChordDefinition{Name: c.Name, Offsets: slices.Clone(c.Offsets)}
}

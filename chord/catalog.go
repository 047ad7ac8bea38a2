package chord

import "github.com/jsphweid/chordgen/model"

func def(name string, offsets ...int) model.ChordDefinition {
	return model.ChordDefinition{Name: name, Offsets: offsets}
}

// Catalog returns the chords presets are generated for, in generation
// order. Every call returns fresh storage.
func Catalog() []model.ChordDefinition {
	return []model.ChordDefinition{
		def("MAJ", 0, 4, 7),
		def("MAJ6", 0, 4, 7, 9),
		def("DOM7", 0, 4, 7, 10),
		def("MAJ7", 0, 4, 7, 11),
		def("AUG", 0, 4, 8),
		def("AUG7", 0, 4, 8, 10),
		def("MIN", 0, 3, 7),
		def("MIN6", 0, 3, 7, 9),
		def("MIN7", 0, 3, 7, 10),
		def("MINMAJ7", 0, 3, 7, 11),
		def("DIM", 0, 3, 6),
		def("DIM7", 0, 3, 6, 9),
		def("HDIM7", 0, 3, 6, 10),
		def("POW", 0, 7),
		def("POW_AUG", 0, 7, 12),
	}
}

func Find(name string) (model.ChordDefinition, bool) {
	for _, c := range Catalog() {
		if c.Name == name {
			return c, true
		}
	}
	return model.ChordDefinition{}, false
}

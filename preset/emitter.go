package preset

import (
	"path"

	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/progress"
	"github.com/pkg/errors"
)

type Serializer interface {
	Serialize(f *m8.InstrumentFile) ([]byte, error)
}

// Sink stores generated files. Paths are slash separated and relative to
// the sink's root.
type Sink interface {
	MkdirAll(dir string) error
	WriteFile(path string, data []byte) error
}

type Emitter struct {
	Sink       Sink
	Serializer Serializer
	Progress   *progress.Reporter
}

func NewEmitter(sink Sink, serializer Serializer, reporter *progress.Reporter) *Emitter {
	return &Emitter{
		Sink:       sink,
		Serializer: serializer,
		Progress:   reporter,
	}
}

// EmitAll writes every chord in order and stops at the first error.
// Files written before the error are left in place.
func (e *Emitter) EmitAll(chords []model.ChordDefinition) (int, error) {
	var written int
	for i, c := range chords {
		e.Progress.Chord(i+1, len(chords), c.Name)
		n, err := e.Emit(c)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Emit creates the chord's directory and writes its presets into it.
func (e *Emitter) Emit(c model.ChordDefinition) (int, error) {
	dir := c.Name
	if err := e.Sink.MkdirAll(dir); err != nil {
		return 0, errors.WithStack(&FolderError{Path: dir, Err: err})
	}

	var written int
	for _, p := range Presets(c) {
		data, err := Render(e.Serializer, p)
		if err != nil {
			return written, err
		}

		filename := path.Join(dir, p.FileName)
		if err := e.Sink.WriteFile(filename, data); err != nil {
			return written, errors.WithStack(&WriteError{Path: filename, Err: err})
		}
		e.Progress.Wrote(filename, len(data))
		written++
	}
	return written, nil
}

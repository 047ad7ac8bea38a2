package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return ReadMidi(dat)
}

func ReadMidi(dat []byte) (*smf.SMF, error) {
	return guardParse(func() (*smf.SMF, error) {
		return smf.ReadFrom(bytes.NewReader(dat))
	})
}

// guardParse turns a panic in parse into an error.
// https://github.com/gomidi/midi/issues/20
func guardParse(parse func() (*smf.SMF, error)) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("error parsing midi file: %v", r)
		}
	}()

	res, err := parse()
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

// Blocks groups a track's note-ons by the tick they start on.
func Blocks(track smf.Track) [][]uint8 {
	var res [][]uint8
	var absTicks int64
	lastTick := int64(-1)
	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel, key, velocity uint8
		if !event.Message.GetNoteOn(&channel, &key, &velocity) {
			continue
		}
		if absTicks != lastTick {
			res = append(res, nil)
			lastTick = absTicks
		}
		res[len(res)-1] = append(res[len(res)-1], key)
	}
	return res
}

package midi

import (
	"fmt"
	"io"
	"testing"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestPreviewRoundTrip(t *testing.T) {
	maj, _ := chord.Find("MAJ")
	data, err := PreviewBytes(maj, 48)
	assert := assert.New(t)
	assert.NoError(err)

	s, err := ReadMidi(data)
	assert.NoError(err)
	assert.Len(s.Tracks, 2)

	assert.Equal([][]uint8{
		{48, 52, 55},
		{52, 55, 60},
		{55, 60, 64},
	}, Blocks(s.Tracks[0]))

	table := Blocks(s.Tracks[1])
	assert.Len(table, constants.TableEntries)
	assert.Equal([]uint8{48, 52, 55}, table[0])
	assert.Equal([]uint8{52, 55, 60}, table[1])
}

func TestActiveOffsetsSkipsEmptySlotSix(t *testing.T) {
	maj, _ := chord.Find("MAJ")
	table := chord.ChordTable(maj)
	filled := chord.FilledSlots(maj.Len())

	assert := assert.New(t)
	assert.Equal(uint8(0xFF), table[1].Mask)
	assert.Equal([]int{12, 4, 7, 12, 4, 7}, activeOffsets(table[1], filled))
	assert.Equal([]uint8{52, 55, 60}, keys(48, activeOffsets(table[1], filled)))

	dom7, _ := chord.Find("DOM7")
	assert.Equal([]int{0, 4, 7, 10}, activeOffsets(chord.ChordTable(dom7)[0], chord.FilledSlots(dom7.Len())))
}

func TestKeysDropsDuplicatesAndOutOfRange(t *testing.T) {
	assert.Equal(t, []uint8{120, 127}, keys(120, []int{7, 0, 7, 8, 0}))
}

func TestGuardParseRecoversAnyPanic(t *testing.T) {
	for _, v := range []interface{}{"boom", io.ErrUnexpectedEOF, 42} {
		s, err := guardParse(func() (*smf.SMF, error) { panic(v) })
		assert := assert.New(t)
		assert.Nil(s)
		assert.Error(err)
		assert.Contains(err.Error(), fmt.Sprint(v))
	}
}

func TestReadMidiRejectsGarbage(t *testing.T) {
	_, err := ReadMidi([]byte("not a midi file"))
	assert.Error(t, err)
}

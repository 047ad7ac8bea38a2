package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("CHORDGEN_OUT")
	if path != "" {
		return path
	}
	return "FM_CHORDS"
}

func GetPreviewDir() string {
	path := os.Getenv("CHORDGEN_PREVIEW_OUT")
	if path != "" {
		return path
	}
	return "CHORD_PREVIEWS"
}

func GetS3Region() string {
	region := os.Getenv("CHORDGEN_S3_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// empty means the default AWS endpoint resolution
func GetS3Endpoint() string {
	return os.Getenv("CHORDGEN_S3_ENDPOINT")
}

const Octave = 12

// number of chords a hypersynth can hold
const TableEntries = 16

// offsets per hypersynth chord, not counting the implicit root
const ChordSlots = 7

// starts the mutate cursor past any real chord length, so the
// first table entry is always the unmutated chord
const MutateCursorSentinel = 8

const PresetExt = ".m8i"
const InversionSuffix = "_INV"
const HyperSynthSuffix = "_HS"

// NOTE: the firmware format the presets are tagged with
const FormatMajor = 4
const FormatMinor = 2
const FormatPatch = 0

package cmd

import (
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/midi"
	"github.com/jsphweid/chordgen/progress"
	"github.com/jsphweid/chordgen/sink"
	"github.com/spf13/cobra"
)

var (
	previewDir string
	baseNote   uint8
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewDir, "out", "o", "", "output folder (default $CHORDGEN_PREVIEW_OUT or CHORD_PREVIEWS)")
	previewCmd.Flags().Uint8Var(&baseNote, "base-note", 48, "MIDI note the chords are built on")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Renders every chord's voicings as MIDI files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := previewDir
		if dir == "" {
			dir = constants.GetPreviewDir()
		}
		reporter := newReporter(cmd)
		n, err := Preview(sink.NewDir(dir), baseNote, reporter)
		if err != nil {
			return err
		}
		reporter.Done(n, dir)
		return nil
	},
}

// Preview writes <CHORD>.mid for every chord of the catalog.
func Preview(d *sink.Dir, base uint8, reporter *progress.Reporter) (int, error) {
	if err := d.MkdirAll(""); err != nil {
		return 0, err
	}
	catalog := chord.Catalog()
	for i, c := range catalog {
		reporter.Chord(i+1, len(catalog), c.Name)
		data, err := midi.PreviewBytes(c, base)
		if err != nil {
			return i, err
		}
		if err := d.WriteFile(c.Name+".mid", data); err != nil {
			return i, err
		}
		reporter.Wrote(c.Name+".mid", len(data))
	}
	return len(catalog), nil
}

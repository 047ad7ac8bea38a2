package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.m8i|file.mid>",
	Short: "Inspects a generated preset or preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".mid") {
		return inspectMidi(w, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	f, err := m8.Read(data)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}

	fmt.Fprintf(w, "name: %s\n", f.Instrument.InstrumentName())
	fmt.Fprintf(w, "kind: %v (format %d.%d.%d)\n", f.Instrument.Kind(), f.Version.Major, f.Version.Minor, f.Version.Patch)

	switch inst := f.Instrument.(type) {
	case *m8.FMSynth:
		fmt.Fprintf(w, "algo: 0x%02X\n", uint8(inst.Algo))
		for i, op := range inst.Operators {
			fmt.Fprintf(w, "op %c: shape %d ratio %d.%02d level 0x%02X\n", 'A'+i, op.Shape, op.Ratio, op.RatioFine, op.Level)
		}
	case *m8.HyperSynth:
		fmt.Fprintf(w, "default chord: %v\n", inst.DefaultChord)
		for i, c := range inst.Chords {
			fmt.Fprintf(w, "chord %X: mask 0x%02X offsets %v\n", i, c.Mask, c.Offsets)
		}
	}
	return nil
}

func inspectMidi(w io.Writer, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	for i, track := range s.Tracks {
		fmt.Fprintf(w, "track %d:\n", i)
		for _, block := range midi.Blocks(track) {
			fmt.Fprintf(w, "  %v\n", block)
		}
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Summarizes a generated preset folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := resolveOutDir()
		if len(args) == 1 {
			root = args[0]
		}
		r, err := analyzeOutput(root)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), r)
		return nil
	},
}

var presetPattern = regexp.MustCompile(`^(.+?)(_INV\d+|_HS)?\.m8i$`)

type outputReport struct {
	numChordDirs    int
	numPresets      int
	numInversions   int
	numTables       int
	numBytes        int64
	presetsPerChord map[string]int
	problems        []string
}

func analyzeOutput(root string) (outputReport, error) {
	report := outputReport{presetsPerChord: map[string]int{}}

	dirs, err := os.ReadDir(root)
	if err != nil {
		return report, errors.Wrapf(err, "could not read %s", root)
	}

	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		report.numChordDirs += 1
		files, err := os.ReadDir(filepath.Join(root, dir.Name()))
		if err != nil {
			return report, errors.WithStack(err)
		}
		for _, file := range files {
			m := presetPattern.FindStringSubmatch(file.Name())
			if m == nil || m[1] != dir.Name() {
				continue
			}
			info, err := file.Info()
			if err != nil {
				return report, errors.WithStack(err)
			}
			report.numPresets += 1
			report.numBytes += info.Size()
			report.presetsPerChord[dir.Name()] += 1
			switch {
			case m[2] == "_HS":
				report.numTables += 1
			case m[2] != "":
				report.numInversions += 1
			}
		}
	}

	for _, c := range chord.Catalog() {
		want := c.Len() + 1
		if got := report.presetsPerChord[c.Name]; got != want {
			report.problems = append(report.problems, fmt.Sprintf("%s: %d presets, expected %d", c.Name, got, want))
		}
	}
	return report, nil
}

func printReport(w io.Writer, r outputReport) {
	fmt.Fprintf(w, "chord folders: %v\n", r.numChordDirs)
	fmt.Fprintf(w, "presets: %v (%v inversions, %v chord tables)\n", r.numPresets, r.numInversions, r.numTables)
	fmt.Fprintf(w, "total bytes: %v\n", r.numBytes)
	for _, name := range util.GetKeys(r.presetsPerChord) {
		fmt.Fprintf(w, "  %-8s %v\n", name, r.presetsPerChord[name])
	}
	for _, p := range r.problems {
		fmt.Fprintf(w, "problem: %s\n", p)
	}
}

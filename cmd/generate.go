package cmd

import (
	"fmt"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/m8"
	"github.com/jsphweid/chordgen/preset"
	"github.com/jsphweid/chordgen/progress"
	"github.com/jsphweid/chordgen/sink"
	"github.com/jsphweid/chordgen/util"
	"github.com/spf13/cobra"
)

var (
	outDir   string
	clean    bool
	s3Bucket string
	s3Prefix string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "output root (default $CHORDGEN_OUT or FM_CHORDS)")
	generateCmd.Flags().BoolVar(&clean, "clean", false, "empty the output root first")
	generateCmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "upload to this S3 bucket instead of the local disk")
	generateCmd.Flags().StringVar(&s3Prefix, "s3-prefix", "", "key prefix inside the S3 bucket")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates presets for every chord",
	Long: `Generates presets for every chord of the catalog:
  <out>/<CHORD>/<CHORD>.m8i         root position
  <out>/<CHORD>/<CHORD>_INV<n>.m8i  inversions
  <out>/<CHORD>/<CHORD>_HS.m8i      hypersynth chord table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reporter := newReporter(cmd)
		s, err := outputSink()
		if err != nil {
			return err
		}
		reporter.Update("writing presets to %v", s)
		n, err := Generate(s, reporter)
		if err != nil {
			return err
		}
		reporter.Done(n, fmt.Sprint(s))
		return nil
	},
}

func resolveOutDir() string {
	if outDir != "" {
		return outDir
	}
	return constants.GetOutputDir()
}

func outputSink() (preset.Sink, error) {
	if s3Bucket != "" {
		return sink.NewS3(s3Bucket, s3Prefix, constants.GetS3Region(), constants.GetS3Endpoint())
	}
	root := resolveOutDir()
	if clean {
		if err := util.RecreateDir(root); err != nil {
			return nil, err
		}
	}
	return sink.NewDir(root), nil
}

// Generate writes the whole catalog to s and returns the number of files
// written.
func Generate(s preset.Sink, reporter *progress.Reporter) (int, error) {
	e := preset.NewEmitter(s, m8.NewInstrumentWriter(), reporter)
	return e.EmitAll(chord.Catalog())
}

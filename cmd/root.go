package cmd

import (
	"os"

	"github.com/jsphweid/chordgen/progress"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "chordgen",
	Short: "M8 chord preset generator",
	Long: `Generates M8 FM synth and hypersynth instrument presets, one folder
per chord, with every inversion of the chord as its own preset.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print every written file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "print errors with stack traces")
}

func newReporter(cmd *cobra.Command) *progress.Reporter {
	return progress.NewReporter(cmd.OutOrStdout(), verbose, debug)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		progress.NewReporter(os.Stderr, verbose, debug).Error(err)
		os.Exit(1)
	}
}

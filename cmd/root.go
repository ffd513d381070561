package cmd

import (
	"github.com/jsphweid/chordquiz/constants"
	"github.com/jsphweid/chordquiz/logger"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "chordquiz",
	Short: "Chord spelling and engraving",
	Long: `chordquiz spells chords from a root and a quality and engraves them
on a five-line staff as SVG or PNG, or exports them as MIDI.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		constants.LoadEnv()
		logger.Set(logger.NewText(verbose))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log layout decisions")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

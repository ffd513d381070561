package cmd

import (
	"github.com/jsphweid/chordquiz/midi"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "chord.mid", "output file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export ROOT [QUALITY]",
	Short: "Exports a chord as MIDI",
	Long:  `Exports a chord as a Standard MIDI File`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ParseChord(args[0], optionalArg(args, 1))
		if err != nil {
			return err
		}
		return midi.WriteFile(exportOut, c)
	},
}

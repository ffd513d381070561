package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordquiz/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Inspects a MIDI file",
	Long:  `Lists the notes a MIDI file sounds`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	keys, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Fprintf(w, "key: %v\n", key)
		fmt.Fprintf(w, "name: %v\n", midi.PitchName(key))
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordquiz/chord"
	"github.com/jsphweid/chordquiz/clef"
	"github.com/jsphweid/chordquiz/constants"
	"github.com/jsphweid/chordquiz/render"
	"github.com/jsphweid/chordquiz/util"
	"github.com/spf13/cobra"
)

var (
	renderClef   string
	renderFormat string
	renderOut    string
	renderScale  float64
	renderFont   string
)

func init() {
	renderCmd.Flags().StringVar(&renderClef, "clef", "", "g, c or f (default: chosen from the root)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "svg", "svg or png")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "-", "output file, - for stdout")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 0, "png pixels per unit (default $CHORDQUIZ_PNG_SCALE or 4)")
	renderCmd.Flags().StringVar(&renderFont, "font", "", "SMuFL font for png glyphs (default $CHORDQUIZ_FONT_PATH)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render ROOT [QUALITY]",
	Short: "Engraves a chord",
	Long:  `Engraves a chord as SVG or PNG, e.g. "render Eb3 m7b5 --format png -o chord.png".`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ParseChord(args[0], optionalArg(args, 1))
		if err != nil {
			return err
		}
		f, closeFn, err := util.CreateFile(renderOut)
		if err != nil {
			return err
		}
		defer closeFn()
		return writeRendering(f, c, renderClef, renderFormat, renderOptions())
	},
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

func renderOptions() render.Options {
	opts := render.Options{Scale: renderScale, FontPath: renderFont}
	if opts.Scale <= 0 {
		opts.Scale = constants.GetPNGScale()
	}
	if opts.FontPath == "" {
		opts.FontPath = constants.GetFontPath()
	}
	return opts
}

// writeRendering engraves c in the named clef ("" for automatic) and writes
// it in format.
func writeRendering(w io.Writer, c chord.Chord, clefName, format string, opts render.Options) error {
	cl := c.Clef()
	if clefName != "" {
		var err error
		if cl, err = clef.ParseClef(clefName); err != nil {
			return err
		}
	}
	d := c.DrawingWithClef(cl)
	switch format {
	case "svg":
		return d.WriteSVG(w)
	case "png":
		return render.PNG(w, d, opts)
	}
	return fmt.Errorf("unknown format %q", format)
}

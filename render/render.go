// Package render rasterizes score drawings with gogpu/gg.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/jsphweid/chordquiz/constants"
	"github.com/jsphweid/chordquiz/logger"
	"github.com/jsphweid/chordquiz/score"
)

const DefaultScale = constants.DefaultPNGScale

// Options controls rasterization.
type Options struct {
	// Scale is pixels per drawing unit. Zero means DefaultScale.
	Scale float64
	// FontPath is a SMuFL font (e.g. Bravura) used for glyphs. Without one,
	// noteheads are drawn as ellipses and other glyphs are left out.
	FontPath string
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return DefaultScale
	}
	return o.Scale
}

// Size returns the pixel dimensions d is rendered at.
func Size(d score.Drawing, opts Options) (int, int) {
	s := opts.scale()
	return int(math.Ceil(d.Viewport.Width * s)), int(math.Ceil(d.Viewport.Height * s))
}

type canvas struct {
	dc    *gg.Context
	view  score.Viewport
	scale float64
	font  bool
}

func (c *canvas) point(x, y float64) (float64, float64) {
	return (x - c.view.X) * c.scale, (y - c.view.Y) * c.scale
}

func (c *canvas) line(p score.Primitive) error {
	x1, y1 := c.point(p.X, p.Y)
	x2, y2 := c.point(p.X2, p.Y2)
	c.dc.SetLineWidth(p.Thickness * c.scale)
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.dc.Stroke()
}

func (c *canvas) glyph(p score.Primitive) error {
	x, y := c.point(p.X, p.Y)
	if c.font {
		c.dc.DrawString(string(p.Glyph), x, y)
		return nil
	}
	if p.Glyph != score.NoteheadWhole {
		logger.Get().Debug("no font, skipping glyph", "glyph", fmt.Sprintf("%U", p.Glyph))
		return nil
	}
	rx := 0.84 * score.StaffSpace * c.scale
	ry := 0.5 * score.StaffSpace * c.scale
	c.dc.DrawEllipse(x+rx, y, rx, ry)
	return c.dc.Fill()
}

// PNG rasterizes d and encodes it as PNG to w.
func PNG(w io.Writer, d score.Drawing, opts Options) error {
	width, height := Size(d, opts)
	dc := gg.NewContext(width, height)
	defer dc.Close()

	c := &canvas{dc: dc, view: d.Viewport, scale: opts.scale()}
	if opts.FontPath != "" {
		source, err := text.NewFontSourceFromFile(opts.FontPath)
		if err != nil {
			return fmt.Errorf("loading font %s: %w", opts.FontPath, err)
		}
		// SMuFL fonts are designed so that one em is four staff spaces.
		dc.SetFont(source.Face(4 * score.StaffSpace * c.scale))
		c.font = true
	} else {
		logger.Get().Warn("no music font configured, drawing noteheads only")
	}

	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	for _, p := range d.Primitives {
		var err error
		switch p.Kind {
		case score.KindLine:
			err = c.line(p)
		case score.KindGlyph:
			err = c.glyph(p)
		}
		if err != nil {
			return fmt.Errorf("drawing %v: %w", p.Kind, err)
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

package score

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteSVG writes d as a standalone SVG document. Glyphs are emitted as
// text in the "bravura" font class, so the page must provide a SMuFL font.
func (d Drawing) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	v := d.Viewport
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" class="score bravura" viewBox="%s %s %s %s">`,
		num(v.X), num(v.Y), num(v.Width), num(v.Height))
	bw.WriteString("\n")
	for _, p := range d.Primitives {
		switch p.Kind {
		case KindLine:
			fmt.Fprintf(bw, `<path d="M%s,%s L%s,%s" stroke-width="%s" stroke="black" />`,
				num(p.X), num(p.Y), num(p.X2), num(p.Y2), num(p.Thickness))
		case KindGlyph:
			fmt.Fprintf(bw, `<text x="%s" y="%s">&#x%X;</text>`, num(p.X), num(p.Y), p.Glyph)
		}
		bw.WriteString("\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// SVG returns the SVG document for d.
func (d Drawing) SVG() string {
	var buf bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = d.WriteSVG(&buf)
	return buf.String()
}

package score

// Kind identifies what a Primitive draws.
type Kind uint8

const (
	KindGlyph Kind = iota // a font glyph with its origin at (X, Y)
	KindLine              // a stroked segment from (X, Y) to (X2, Y2)
)

var kindNames = [...]string{
	KindGlyph: "Glyph",
	KindLine:  "Line",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Primitive is a single drawing instruction in staff coordinates, where one
// staff space is StaffSpace units and y grows downward.
type Primitive struct {
	Kind Kind

	// Glyph is the SMuFL code point for KindGlyph.
	Glyph rune

	X, Y float64

	// X2, Y2 and Thickness are set for KindLine.
	X2, Y2    float64
	Thickness float64
}

func glyphAt(g rune, x, y float64) Primitive {
	return Primitive{Kind: KindGlyph, Glyph: g, X: x, Y: y}
}

func lineAt(x1, y1, x2, y2, thickness float64) Primitive {
	return Primitive{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Thickness: thickness}
}

// Viewport is the visible region of a Drawing.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// Drawing is the finished output of a Builder. Primitives are in drawing
// order: later primitives paint over earlier ones.
type Drawing struct {
	Primitives []Primitive
	Viewport   Viewport
}

// Glyphs returns only the glyph primitives, in order.
func (d Drawing) Glyphs() []Primitive {
	var res []Primitive
	for _, p := range d.Primitives {
		if p.Kind == KindGlyph {
			res = append(res, p)
		}
	}
	return res
}

// Lines returns only the line primitives, in order.
func (d Drawing) Lines() []Primitive {
	var res []Primitive
	for _, p := range d.Primitives {
		if p.Kind == KindLine {
			res = append(res, p)
		}
	}
	return res
}

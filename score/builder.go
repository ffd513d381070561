package score

import (
	"sort"

	"github.com/jsphweid/chordquiz/clef"
	"github.com/jsphweid/chordquiz/logger"
	"github.com/jsphweid/chordquiz/pitch"
)

// AccidentalPlacement is an accidental sign to be drawn at a staff position.
type AccidentalPlacement struct {
	Accidental pitch.Accidental
	Position   clef.StaffPosition
}

// minColumnGap is the distance in staff positions at which two accidentals
// no longer collide and may share a column. Six steps is a seventh.
const minColumnGap = 6

// Builder lays out a single measure left to right. Each call draws at the
// current cursor and may advance it; the cursor never moves left.
//
// A Builder is used once: create it, chain the calls, then Finalize.
type Builder struct {
	cursor     float64
	primitives []Primitive
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Cursor returns the current horizontal position.
func (b *Builder) Cursor() float64 {
	return b.cursor
}

// Space advances the cursor by amount staff spaces. Negative amounts are
// ignored.
func (b *Builder) Space(amount float64) *Builder {
	if amount > 0 {
		b.cursor += amount * StaffSpace
	}
	return b
}

// Clef draws the clef glyph at the cursor.
func (b *Builder) Clef(c clef.Clef) *Builder {
	b.primitives = append(b.primitives, glyphAt(c.Glyph(), b.cursor, Y(c.GlyphPosition())))
	return b
}

// Accidentals draws accidental signs to the left of the cursor, highest
// first. Accidentals close in pitch are pushed into columns further left;
// ones a seventh or more apart share a column.
func (b *Builder) Accidentals(accs []AccidentalPlacement) *Builder {
	logger.Get().Debug("adding accidentals", "accidentals", accs)
	sorted := make([]AccidentalPlacement, len(accs))
	copy(sorted, accs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})
	indents := AlignAccidentals(sorted)
	for i, acc := range sorted {
		g := glyphAt(AccidentalGlyph(acc.Accidental), b.cursor+indents[i], Y(acc.Position))
		b.primitives = append(b.primitives, g)
	}
	return b
}

// AlignAccidentals returns the horizontal offset of each accidental in accs,
// which must be sorted from highest to lowest position.
func AlignAccidentals(accs []AccidentalPlacement) []float64 {
	if len(accs) == 0 {
		return nil
	}
	indents := make([]float64, 0, len(accs))
	top := accs[0].Position
	indent := 0.0
	for _, acc := range accs {
		if top-acc.Position >= minColumnGap {
			top = acc.Position
			indent = 0
		}
		indents = append(indents, indent)
		indent -= StaffSpace
	}
	return indents
}

// Chord draws a notehead at each position, with leger lines for notes
// outside the staff. An empty chord draws nothing.
func (b *Builder) Chord(positions []clef.StaffPosition) *Builder {
	for _, l := range LegerLines(positions) {
		y := Y(l)
		x := b.cursor - LegerLineExtension
		b.primitives = append(b.primitives, lineAt(x, y, x+LegerLineLength, y, LegerLineThickness))
	}
	for _, pos := range positions {
		b.primitives = append(b.primitives, glyphAt(NoteheadWhole, b.cursor, Y(pos)))
	}
	return b
}

// LegerLines returns the line positions needed below and above the staff
// for a chord spanning positions, lowest first.
func LegerLines(positions []clef.StaffPosition) []clef.StaffPosition {
	if len(positions) == 0 {
		return nil
	}
	bottom, top := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < bottom {
			bottom = p
		}
		if p > top {
			top = p
		}
	}
	var res []clef.StaffPosition
	// Truncating toward zero keeps a note in the space below a leger line
	// from getting another line beneath it.
	for l := bottom - bottom%2; l <= -2; l += 2 {
		res = append(res, l)
	}
	for l := clef.StaffPosition(10); l <= top; l += 2 {
		res = append(res, l)
	}
	return res
}

// Barline draws a thin double barline at the cursor.
func (b *Builder) Barline() *Builder {
	for _, x := range []float64{b.cursor, b.cursor + BarlineSeparation} {
		b.primitives = append(b.primitives, lineAt(x, 0, x, StaffHeight, ThinBarlineThickness))
	}
	b.cursor += BarlineSeparation + 0.5*ThinBarlineThickness
	return b
}

// Finalize puts the staff lines underneath everything drawn so far and
// returns the drawing with a viewport fitted to the cursor.
func (b *Builder) Finalize() Drawing {
	primitives := make([]Primitive, 0, NumStaffLines+len(b.primitives))
	for i := 0; i < NumStaffLines; i++ {
		y := float64(i) * StaffSpace
		primitives = append(primitives, lineAt(0, y, b.cursor, y, StaffLineThickness))
	}
	primitives = append(primitives, b.primitives...)
	return Drawing{
		Primitives: primitives,
		Viewport: Viewport{
			X:      -2 * StaffSpace,
			Y:      -4 * StaffSpace,
			Width:  b.cursor + 4*StaffSpace,
			Height: 12 * StaffSpace,
		},
	}
}

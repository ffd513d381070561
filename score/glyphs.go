package score

import (
	"github.com/jsphweid/chordquiz/clef"
	"github.com/jsphweid/chordquiz/pitch"
)

// Engraving constants for a 16px font size, where a staff space is 4 units.
const (
	StaffSpace           = 4.0
	StaffLineThickness   = 0.13 * StaffSpace
	LegerLineThickness   = 0.16 * StaffSpace
	ThinBarlineThickness = 0.16 * StaffSpace
	BarlineSeparation    = 0.4 * StaffSpace
	LegerLineExtension   = 0.25 * StaffSpace
	LegerLineLength      = 2.188 * StaffSpace
	StaffHeight          = 4 * StaffSpace
	NumStaffLines        = 5
)

// SMuFL code points.
const (
	NoteheadWhole         = '\ue0a2'
	AccidentalFlat        = '\ue260'
	AccidentalNatural     = '\ue261'
	AccidentalSharp       = '\ue262'
	AccidentalDoubleSharp = '\ue263'
	AccidentalDoubleFlat  = '\ue264'
)

func AccidentalGlyph(acc pitch.Accidental) rune {
	switch acc {
	case pitch.DoubleFlat:
		return AccidentalDoubleFlat
	case pitch.Flat:
		return AccidentalFlat
	case pitch.Sharp:
		return AccidentalSharp
	case pitch.DoubleSharp:
		return AccidentalDoubleSharp
	}
	return AccidentalNatural
}

// Y converts a staff position to a y coordinate. Position 0 is the bottom
// line at y = StaffHeight; higher positions have smaller y.
func Y(pos clef.StaffPosition) float64 {
	return (4 - float64(pos)/2) * StaffSpace
}

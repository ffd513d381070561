package clef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordquiz/pitch"
)

var ErrUnknownClef = errors.New("unknown clef")

// StaffPosition is a diatonic offset from the bottom staff line, increasing
// toward higher pitches. Two units make one staff space.
type StaffPosition int

// Clef anchors staff position zero to a letter and octave.
type Clef int

const (
	G Clef = iota // bottom staff line E4
	C             // bottom staff line F3
	F             // bottom staff line G2
)

// SMuFL code points.
const (
	gClefGlyph = '\ue050'
	cClefGlyph = '\ue05c'
	fClefGlyph = '\ue062'
)

func (c Clef) String() string {
	switch c {
	case G:
		return "G"
	case C:
		return "C"
	case F:
		return "F"
	}
	return "Clef(?)"
}

// Reference returns the pitch that sits on the bottom staff line.
func (c Clef) Reference() pitch.PitchOctave {
	switch c {
	case C:
		return pitch.NewPitchOctave(pitch.TpcF, 3)
	case F:
		return pitch.NewPitchOctave(pitch.TpcG, 2)
	}
	return pitch.NewPitchOctave(pitch.TpcE, 4)
}

// Position returns where p is written on a staff with clef c.
func (c Clef) Position(p pitch.PitchOctave) StaffPosition {
	return StaffPosition(p.Diatonic() - c.Reference().Diatonic())
}

func (c Clef) Glyph() rune {
	switch c {
	case C:
		return cClefGlyph
	case F:
		return fClefGlyph
	}
	return gClefGlyph
}

// GlyphPosition is the staff line the clef glyph's origin is drawn on:
// the G line for G, the middle line for C and the F line for F.
func (c Clef) GlyphPosition() StaffPosition {
	switch c {
	case C:
		return 4
	case F:
		return 6
	}
	return 2
}

// ForRoot picks the clef a chord on root is written in.
func ForRoot(root pitch.PitchOctave) Clef {
	if root.Octave >= 4 || (root.Octave >= 3 && root.Step() > pitch.E) {
		return G
	}
	return F
}

func ParseClef(s string) (Clef, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "treble":
		return G, nil
	case "c", "alto":
		return C, nil
	case "f", "bass":
		return F, nil
	}
	return G, fmt.Errorf("%w: %q", ErrUnknownClef, s)
}

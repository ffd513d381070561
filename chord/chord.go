package chord

import (
	"github.com/jsphweid/chordquiz/clef"
	"github.com/jsphweid/chordquiz/logger"
	"github.com/jsphweid/chordquiz/pitch"
	"github.com/jsphweid/chordquiz/score"
)

// Chord is a quality built on a root, with every tone spelled out.
// Chords are values and never change after Build.
type Chord struct {
	root    pitch.PitchOctave
	quality Quality
	pitches []pitch.PitchOctave
}

// Build spells the chord of quality q on root. It reports false if q is
// not a defined quality or any tone would need more than a double
// accidental; no partial chord is returned.
func Build(root pitch.PitchOctave, q Quality) (Chord, bool) {
	if !q.Valid() {
		return Chord{}, false
	}
	intervals := q.info().intervals
	pitches := make([]pitch.PitchOctave, 0, len(intervals))
	for _, iv := range intervals {
		p, ok := root.Add(iv)
		if !ok {
			return Chord{}, false
		}
		pitches = append(pitches, p)
	}
	return Chord{root: root, quality: q, pitches: pitches}, true
}

func (c Chord) Root() pitch.PitchOctave {
	return c.root
}

func (c Chord) Quality() Quality {
	return c.quality
}

// Pitches returns the chord tones from the root upward.
func (c Chord) Pitches() []pitch.PitchOctave {
	res := make([]pitch.PitchOctave, len(c.pitches))
	copy(res, c.pitches)
	return res
}

// HasDoubleAccidental reports whether any tone is spelled with a double
// flat or double sharp.
func (c Chord) HasDoubleAccidental() bool {
	for _, p := range c.pitches {
		if p.Tpc.Accidental().IsDouble() {
			return true
		}
	}
	return false
}

// DisplayName is the chord symbol, e.g. "C", "Fm♭5" or "B♭7".
func (c Chord) DisplayName() string {
	return c.root.Tpc.String() + c.quality.Suffix()
}

// String spells the chord out, e.g. "F diminished".
func (c Chord) String() string {
	return c.root.Tpc.String() + " " + c.quality.String()
}

// Clef is the clef the chord is written in unless overridden.
func (c Chord) Clef() clef.Clef {
	return clef.ForRoot(c.root)
}

// StaffPositions places each tone on a staff with clef cl. Tones are folded
// up by octaves so that none is written below the root.
func (c Chord) StaffPositions(cl clef.Clef) []clef.StaffPosition {
	rootPos := cl.Position(c.root)
	res := make([]clef.StaffPosition, len(c.pitches))
	for i, p := range c.pitches {
		// Build already carries the octave with the letter, so this only
		// guards chords assembled some other way.
		for cl.Position(p) < rootPos {
			p = p.AddOctave()
		}
		res[i] = cl.Position(p)
	}
	return res
}

// Accidentals lists the sign and staff position of every tone that is not
// a natural, in chord order.
func (c Chord) Accidentals(cl clef.Clef) []score.AccidentalPlacement {
	var res []score.AccidentalPlacement
	for i, pos := range c.StaffPositions(cl) {
		p := c.pitches[i]
		_, acc, ok := p.Tpc.Decompose()
		if !ok {
			logger.Get().Debug("no accidental", "pitch", p.String())
			continue
		}
		logger.Get().Debug("accidental", "pitch", p.String(), "accidental", acc.String())
		res = append(res, score.AccidentalPlacement{Accidental: acc, Position: pos})
	}
	return res
}

// Drawing engraves the chord as a single measure in its own clef.
func (c Chord) Drawing() score.Drawing {
	return c.DrawingWithClef(c.Clef())
}

// DrawingWithClef engraves the chord as a single measure in clef cl.
func (c Chord) DrawingWithClef(cl clef.Clef) score.Drawing {
	return score.NewBuilder().
		Space(0.5).
		Clef(cl).
		Space(6).
		Accidentals(c.Accidentals(cl)).
		Space(1.5).
		Chord(c.StaffPositions(cl)).
		Space(6).
		Barline().
		Finalize()
}

package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordquiz/clef"
	"github.com/jsphweid/chordquiz/pitch"
	"github.com/jsphweid/chordquiz/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func po(t *testing.T, s string) pitch.PitchOctave {
	t.Helper()
	p, err := pitch.ParsePitchOctave(s)
	require.NoError(t, err)
	return p
}

func mustBuild(t *testing.T, root string, q Quality) Chord {
	t.Helper()
	c, ok := Build(po(t, root), q)
	require.True(t, ok, "%s %v", root, q)
	return c
}

func spell(c Chord) []string {
	var res []string
	for _, p := range c.Pitches() {
		res = append(res, p.Tpc.ASCII()+fmt.Sprint(p.Octave))
	}
	return res
}

func TestBuildSpellsEveryQuality(t *testing.T) {
	cases := []struct {
		root string
		q    Quality
		want []string
	}{
		{"C4", Maj, []string{"C4", "E4", "G4"}},
		{"A3", Min, []string{"A3", "C4", "E4"}},
		{"F4", Dim, []string{"F4", "Ab4", "Cb5"}},
		{"E4", Aug, []string{"E4", "G#4", "B#4"}},
		{"G3", Dom7, []string{"G3", "B3", "D4", "F4"}},
		{"Db4", Maj7, []string{"Db4", "F4", "Ab4", "C5"}},
		{"F#3", Min7, []string{"F#3", "A3", "C#4", "E4"}},
		{"B3", Min7b5, []string{"B3", "D4", "F4", "A4"}},
		{"C4", Dim7, []string{"C4", "Eb4", "Gb4", "Bbb4"}},
	}
	for _, c := range cases {
		t.Run(c.root+" "+c.q.String(), func(t *testing.T) {
			assert.Equal(t, c.want, spell(mustBuild(t, c.root, c.q)))
		})
	}
}

func TestBuildFailsWithoutPartialChord(t *testing.T) {
	c, ok := Build(po(t, "Cb4"), Dim7)
	assert := assert.New(t)
	assert.False(ok)
	assert.Empty(c.Pitches())

	_, ok = Build(po(t, "D#4"), Aug)
	assert.True(ok)
	_, ok = Build(po(t, "Bx4"), Maj)
	assert.False(ok)
}

func TestBuildRejectsUndefinedQuality(t *testing.T) {
	assert := assert.New(t)
	for _, q := range []Quality{-1, NumQualities, Quality(42)} {
		assert.False(q.Valid())
		c, ok := Build(po(t, "C4"), q)
		assert.False(ok, q.String())
		assert.Empty(c.Pitches())
	}
	assert.Equal("Quality(42)", Quality(42).String())
	for _, q := range Qualities() {
		assert.True(q.Valid())
	}
}

func TestBuildMatchesIntervalTable(t *testing.T) {
	for _, q := range Qualities() {
		for tpc := q.FlattestRoot(true); tpc <= q.SharpestRoot(true); tpc++ {
			c, ok := Build(pitch.NewPitchOctave(tpc, 4), q)
			require.True(t, ok)
			intervals := q.Intervals()
			pitches := c.Pitches()
			require.Len(t, pitches, len(intervals))
			for i, iv := range intervals {
				want, _ := tpc.Add(iv)
				assert.Equal(t, want, pitches[i].Tpc)
			}
			assert.Equal(t, pitch.NewPitchOctave(tpc, 4), pitches[0])
		}
	}
}

func TestRootRangeWithoutDoubleAccidentals(t *testing.T) {
	for _, q := range Qualities() {
		t.Run(q.String(), func(t *testing.T) {
			lo, hi := q.FlattestRoot(false), q.SharpestRoot(false)
			assert := assert.New(t)
			assert.LessOrEqual(lo, hi)
			for tpc := lo; tpc <= hi; tpc++ {
				c, ok := Build(pitch.NewPitchOctave(tpc, 4), q)
				assert.True(ok, tpc.ASCII())
				assert.False(c.HasDoubleAccidental(), tpc.ASCII())
			}
			for _, outside := range []pitch.Tpc{lo - 1, hi + 1} {
				c, ok := Build(pitch.NewPitchOctave(outside, 4), q)
				assert.False(ok && !c.HasDoubleAccidental(), outside.ASCII())
			}
		})
	}
}

func TestRootRangeWithDoubleAccidentals(t *testing.T) {
	for _, q := range Qualities() {
		t.Run(q.String(), func(t *testing.T) {
			lo, hi := q.FlattestRoot(true), q.SharpestRoot(true)
			assert := assert.New(t)
			for tpc := lo; tpc <= hi; tpc++ {
				_, ok := Build(pitch.NewPitchOctave(tpc, 4), q)
				assert.True(ok, tpc.ASCII())
			}
			_, ok := Build(pitch.NewPitchOctave(lo-1, 4), q)
			assert.False(ok)
			_, ok = Build(pitch.NewPitchOctave(hi+1, 4), q)
			assert.False(ok)
		})
	}
}

func TestRootRangeValues(t *testing.T) {
	assert := assert.New(t)
	name := func(tpc pitch.Tpc) string { return tpc.ASCII() }

	assert.Equal("Fb", name(Maj.FlattestRoot(false)))
	assert.Equal("G#", name(Maj.SharpestRoot(false)))
	assert.Equal("G", name(Dim7.FlattestRoot(false)))
	assert.Equal("B#", name(Dim7.SharpestRoot(false)))
	assert.Equal("Fb", name(Aug.FlattestRoot(false)))
	assert.Equal("E", name(Aug.SharpestRoot(false)))

	assert.Equal("Gb", name(Dim7.FlattestRoot(true)))
	assert.Equal("Bx", name(Dim7.SharpestRoot(true)))
	assert.Equal("Fbb", name(Maj.FlattestRoot(true)))
	assert.Equal("E#", name(Aug.SharpestRoot(true)))
}

func TestStaffPositionsStartAtRootAndNeverDescend(t *testing.T) {
	for _, q := range Qualities() {
		for tpc := q.FlattestRoot(true); tpc <= q.SharpestRoot(true); tpc++ {
			for _, octave := range []int{2, 3, 4, 5} {
				c, ok := Build(pitch.NewPitchOctave(tpc, octave), q)
				require.True(t, ok)
				for _, cl := range []clef.Clef{clef.G, clef.C, clef.F} {
					ps := c.StaffPositions(cl)
					assert.Equal(t, cl.Position(c.Root()), ps[0])
					for i := 1; i < len(ps); i++ {
						assert.GreaterOrEqual(t, ps[i], ps[i-1])
					}
				}
			}
		}
	}
}

func TestStaffPositionsFoldTonesBelowRoot(t *testing.T) {
	c := Chord{
		root:    po(t, "C4"),
		quality: Maj,
		pitches: []pitch.PitchOctave{po(t, "C4"), po(t, "E3"), po(t, "G4")},
	}
	assert.Equal(t, []clef.StaffPosition{-2, 0, 2}, c.StaffPositions(clef.G))
}

func TestAccidentalsOfFDiminished(t *testing.T) {
	c := mustBuild(t, "F4", Dim)
	assert := assert.New(t)
	assert.Equal(clef.G, c.Clef())
	assert.Equal([]clef.StaffPosition{1, 3, 5}, c.StaffPositions(clef.G))
	assert.Equal([]score.AccidentalPlacement{
		{Accidental: pitch.Flat, Position: 3},
		{Accidental: pitch.Flat, Position: 5},
	}, c.Accidentals(clef.G))
}

func TestAccidentalCountMatchesNonNaturalTones(t *testing.T) {
	for _, q := range Qualities() {
		for tpc := q.FlattestRoot(true); tpc <= q.SharpestRoot(true); tpc++ {
			c, ok := Build(pitch.NewPitchOctave(tpc, 3), q)
			require.True(t, ok)
			want := 0
			for _, p := range c.Pitches() {
				if _, _, altered := p.Tpc.Decompose(); altered {
					want++
				}
			}
			assert.Len(t, c.Accidentals(c.Clef()), want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", mustBuild(t, "C4", Maj).DisplayName())
	assert.Equal("Cm7♭5", mustBuild(t, "C4", Min7b5).DisplayName())
	assert.Equal("Fm♭5", mustBuild(t, "F4", Dim).DisplayName())
	assert.Equal("B♭7", mustBuild(t, "Bb3", Dom7).DisplayName())
	assert.Equal("F♯m", mustBuild(t, "F#3", Min).DisplayName())
	assert.Equal("E+", mustBuild(t, "E4", Aug).DisplayName())
	assert.Equal("F diminished", mustBuild(t, "F4", Dim).String())
}

func TestClefFollowsRoot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(clef.G, mustBuild(t, "F3", Maj).Clef())
	assert.Equal(clef.F, mustBuild(t, "E3", Maj).Clef())
	assert.Equal(clef.F, mustBuild(t, "C2", Maj).Clef())
}

func TestDrawing(t *testing.T) {
	c := mustBuild(t, "F4", Dim)
	d := c.Drawing()
	glyphs := d.Glyphs()

	assert := assert.New(t)
	// clef, two flats, three noteheads
	assert.Len(glyphs, 6)
	assert.Equal(clef.G.Glyph(), glyphs[0].Glyph)
	assert.Equal(score.AccidentalFlat, glyphs[1].Glyph)
	assert.Equal(score.Y(5), glyphs[1].Y)
	assert.Equal(score.Y(3), glyphs[2].Y)
	for _, g := range glyphs[3:] {
		assert.Equal(score.NoteheadWhole, g.Glyph)
	}
	// staff plus barline, no leger lines
	assert.Len(d.Lines(), score.NumStaffLines+2)
}

func TestDrawingWithClefOverride(t *testing.T) {
	c := mustBuild(t, "C4", Maj)
	d := c.DrawingWithClef(clef.F)
	glyphs := d.Glyphs()

	assert := assert.New(t)
	assert.Equal(clef.F.Glyph(), glyphs[0].Glyph)
	// C4 E4 G4 sit at 10, 12 and 14 in the bass clef
	assert.Len(d.Lines(), score.NumStaffLines+2+3)
	assert.Equal(score.Y(14), glyphs[len(glyphs)-1].Y)
}

func TestIntervalsReturnsCopy(t *testing.T) {
	ivs := Maj.Intervals()
	ivs[1] = pitch.MinorThird
	assert.Equal(t, pitch.MajorThird, Maj.Intervals()[1])
}

func TestParseQuality(t *testing.T) {
	cases := map[string]Quality{
		"":          Maj,
		"maj":       Maj,
		"M":         Maj,
		"m":         Min,
		"minor":     Min,
		"m♭5":       Dim,
		"dim":       Dim,
		"+":         Aug,
		"Augmented": Aug,
		"7":         Dom7,
		"maj7":      Maj7,
		"M7":        Maj7,
		"m7":        Min7,
		"MIN7":      Min7,
		"m7b5":      Min7b5,
		"m7♭5":      Min7b5,
		"dim7":      Dim7,
		"Dim7":      Dim7,
	}
	for in, want := range cases {
		got, err := ParseQuality(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseQuality("sus4")
	assert.ErrorIs(t, err, ErrUnknownQuality)
}

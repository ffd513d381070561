package sample

import (
	"errors"
	"math/rand"

	"github.com/jsphweid/chordquiz/chord"
	"github.com/jsphweid/chordquiz/logger"
	"github.com/jsphweid/chordquiz/pitch"
)

var ErrExhausted = errors.New("no representable chord found")

const defaultMaxAttempts = 16

// Sampler draws random chords for quiz rounds. Roots are drawn from the
// quality's root range so a build failure is unexpected, but it is retried
// rather than trusted.
type Sampler struct {
	Rand        *rand.Rand
	AllowDouble bool
	// Qualities to choose from; all of them when empty.
	Qualities []chord.Quality
	// Octaves the root may sit in; 3 and 4 when empty.
	Octaves     []int
	MaxAttempts int
}

func New(seed int64, allowDouble bool) *Sampler {
	return &Sampler{
		Rand:        rand.New(rand.NewSource(seed)),
		AllowDouble: allowDouble,
	}
}

func (s *Sampler) qualities() []chord.Quality {
	if len(s.Qualities) == 0 {
		return chord.Qualities()
	}
	return s.Qualities
}

func (s *Sampler) octaves() []int {
	if len(s.Octaves) == 0 {
		return []int{3, 4}
	}
	return s.Octaves
}

func (s *Sampler) maxAttempts() int {
	if s.MaxAttempts <= 0 {
		return defaultMaxAttempts
	}
	return s.MaxAttempts
}

// Root draws a root for q within its representable range.
func (s *Sampler) Root(q chord.Quality) pitch.PitchOctave {
	lo, hi := q.FlattestRoot(s.AllowDouble), q.SharpestRoot(s.AllowDouble)
	tpc := lo + pitch.Tpc(s.Rand.Intn(int(hi-lo)+1))
	octaves := s.octaves()
	return pitch.NewPitchOctave(tpc, octaves[s.Rand.Intn(len(octaves))])
}

// Next returns a random chord, retrying when a build fails or when it
// needs a double accidental that is not allowed.
func (s *Sampler) Next() (chord.Chord, error) {
	qs := s.qualities()
	for attempt := 0; attempt < s.maxAttempts(); attempt++ {
		q := qs[s.Rand.Intn(len(qs))]
		root := s.Root(q)
		c, ok := chord.Build(root, q)
		if !ok {
			logger.Get().Warn("unrepresentable chord, resampling", "root", root.String(), "quality", q.String())
			continue
		}
		if !s.AllowDouble && c.HasDoubleAccidental() {
			logger.Get().Warn("double accidental not allowed, resampling", "chord", c.DisplayName())
			continue
		}
		return c, nil
	}
	return chord.Chord{}, ErrExhausted
}

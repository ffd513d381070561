package sample

import (
	"math/rand"
	"testing"

	"github.com/jsphweid/chordquiz/chord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStaysWithinSingleAccidentals(t *testing.T) {
	s := New(1, false)
	for i := 0; i < 500; i++ {
		c, err := s.Next()
		require.NoError(t, err)
		assert.False(t, c.HasDoubleAccidental(), c.DisplayName())
	}
}

func TestNextWithDoubleAccidentals(t *testing.T) {
	s := New(2, true)
	sawDouble := false
	for i := 0; i < 2000; i++ {
		c, err := s.Next()
		require.NoError(t, err)
		sawDouble = sawDouble || c.HasDoubleAccidental()
	}
	assert.True(t, sawDouble)
}

func TestRootRespectsBounds(t *testing.T) {
	s := &Sampler{Rand: rand.New(rand.NewSource(3)), Octaves: []int{2}}
	for _, q := range chord.Qualities() {
		for i := 0; i < 100; i++ {
			root := s.Root(q)
			assert.Equal(t, 2, root.Octave)
			assert.GreaterOrEqual(t, root.Tpc, q.FlattestRoot(false))
			assert.LessOrEqual(t, root.Tpc, q.SharpestRoot(false))
		}
	}
}

func TestRestrictedQualities(t *testing.T) {
	s := New(4, false)
	s.Qualities = []chord.Quality{chord.Dim7}
	for i := 0; i < 50; i++ {
		c, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, chord.Dim7, c.Quality())
		assert.Len(t, c.Pitches(), 4)
	}
}

func TestSameSeedSameChords(t *testing.T) {
	a, b := New(42, true), New(42, true)
	for i := 0; i < 20; i++ {
		ca, err := a.Next()
		require.NoError(t, err)
		cb, err := b.Next()
		require.NoError(t, err)
		assert.Equal(t, ca.DisplayName(), cb.DisplayName())
		assert.Equal(t, ca.Root(), cb.Root())
	}
}

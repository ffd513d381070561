package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordquiz/chord"
	"github.com/jsphweid/chordquiz/midi"
	"github.com/jsphweid/chordquiz/model"
	"github.com/jsphweid/chordquiz/pitch"
)

const defaultOctave = 4

var ErrUnrepresentable = errors.New("chord needs more than double accidentals")

// ParseChord builds the chord named by a root such as "Eb" or "Eb3" and a
// quality such as "m7b5". A root without an octave sits in octave 4.
func ParseChord(rootArg, qualityArg string) (chord.Chord, error) {
	root, err := pitch.ParsePitchOctave(rootArg)
	if err != nil {
		tpc, tpcErr := pitch.ParseTpc(rootArg)
		if tpcErr != nil {
			return chord.Chord{}, err
		}
		root = pitch.NewPitchOctave(tpc, defaultOctave)
	}
	q, err := chord.ParseQuality(qualityArg)
	if err != nil {
		return chord.Chord{}, err
	}
	c, ok := chord.Build(root, q)
	if !ok {
		return chord.Chord{}, fmt.Errorf("%w: %s %s", ErrUnrepresentable, root.Tpc.ASCII(), q)
	}
	return c, nil
}

func Summarize(c chord.Chord) (model.ChordSummary, error) {
	keys, err := midi.Keys(c)
	if err != nil {
		return model.ChordSummary{}, err
	}
	var pitches []string
	for _, p := range c.Pitches() {
		pitches = append(pitches, p.String())
	}
	return model.ChordSummary{
		Name:     c.DisplayName(),
		LongName: c.String(),
		Root:     c.Root().String(),
		Quality:  c.Quality().String(),
		Clef:     c.Clef().String(),
		Pitches:  pitches,
		MidiKeys: keys,
	}, nil
}

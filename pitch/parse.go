package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPitch = errors.New("invalid pitch")

var accidentalSpellings = []struct {
	text string
	acc  Accidental
}{
	// longest first so "bb" is not read as "b"
	{"bb", DoubleFlat},
	{"##", DoubleSharp},
	{"𝄫", DoubleFlat},
	{"𝄪", DoubleSharp},
	{"♭", Flat},
	{"♯", Sharp},
	{"♮", Natural},
	{"b", Flat},
	{"#", Sharp},
	{"x", DoubleSharp},
}

// ParseTpc reads a spelled pitch such as "C", "F#", "Bb", "Ebb" or "Gx".
func ParseTpc(s string) (Tpc, error) {
	t, rest, err := parseTpcPrefix(s)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, fmt.Errorf("%w: %q has trailing %q", ErrInvalidPitch, s, rest)
	}
	return t, nil
}

// ParsePitchOctave reads a spelled pitch followed by an octave, as in "Eb4".
func ParsePitchOctave(s string) (PitchOctave, error) {
	t, rest, err := parseTpcPrefix(s)
	if err != nil {
		return PitchOctave{}, err
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return PitchOctave{}, fmt.Errorf("%w: %q has no octave", ErrInvalidPitch, s)
	}
	return NewPitchOctave(t, octave), nil
}

func parseTpcPrefix(s string) (Tpc, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", fmt.Errorf("%w: empty", ErrInvalidPitch)
	}
	idx := strings.IndexByte("CDEFGAB", strings.ToUpper(s[:1])[0])
	if idx < 0 {
		return 0, "", fmt.Errorf("%w: %q has no letter name", ErrInvalidPitch, s)
	}
	step := Step(idx)
	rest := s[1:]
	acc := Natural
	for _, sp := range accidentalSpellings {
		if strings.HasPrefix(rest, sp.text) {
			acc = sp.acc
			rest = rest[len(sp.text):]
			break
		}
	}
	return NewTpc(step, acc), rest, nil
}

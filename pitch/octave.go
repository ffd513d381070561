package pitch

import "fmt"

// PitchOctave is a spelled pitch in a specific octave. Octaves follow the
// letter, so B♯3 lies above B3 and below C4.
type PitchOctave struct {
	Tpc    Tpc
	Octave int
}

func NewPitchOctave(t Tpc, octave int) PitchOctave {
	return PitchOctave{Tpc: t, Octave: octave}
}

// Add transposes p upward by i. The octave increments when the letter wraps
// past B. It reports false when the spelling is not representable.
func (p PitchOctave) Add(i Interval) (PitchOctave, bool) {
	t, ok := p.Tpc.Add(i)
	if !ok {
		return PitchOctave{}, false
	}
	octave := p.Octave
	if t.Step() < p.Tpc.Step() {
		octave++
	}
	return PitchOctave{Tpc: t, Octave: octave}, true
}

func (p PitchOctave) AddOctave() PitchOctave {
	return PitchOctave{Tpc: p.Tpc, Octave: p.Octave + 1}
}

// Step returns the letter of p.
func (p PitchOctave) Step() Step {
	return p.Tpc.Step()
}

// Diatonic is the number of letter steps above C0.
func (p PitchOctave) Diatonic() int {
	return p.Octave*NumSteps + int(p.Step())
}

// MIDI returns the MIDI key number of p, with C4 = 60.
func (p PitchOctave) MIDI() int {
	return 12*(p.Octave+1) + p.Tpc.Semitone()
}

func (p PitchOctave) String() string {
	return fmt.Sprintf("%s%d", p.Tpc, p.Octave)
}

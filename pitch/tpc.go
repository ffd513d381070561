package pitch

import "github.com/jsphweid/chordquiz/util"

// Tpc is a spelled pitch class: a position on the line of fifths with C at
// zero, G at one and F at minus one. Enharmonic spellings such as C♯ and D♭
// are distinct values. Ordering by value orders pitches from flattest to
// sharpest.
type Tpc int

// Bounds of the spellings that need at most a double accidental, and of
// those that need at most a single one.
const (
	MinTpc Tpc = -15 // F𝄫
	MaxTpc Tpc = 19  // B𝄪

	MinSingleTpc Tpc = -8 // F♭
	MaxSingleTpc Tpc = 12 // B♯
)

// Natural spellings, for convenience.
const (
	TpcF Tpc = iota - 1
	TpcC
	TpcG
	TpcD
	TpcA
	TpcE
	TpcB
)

// NewTpc spells step with the accidental acc.
func NewTpc(step Step, acc Accidental) Tpc {
	return Tpc(step.naturalFifths() + NumSteps*int(acc))
}

// Valid reports whether t can be written with at most a double accidental.
func (t Tpc) Valid() bool {
	return t >= MinTpc && t <= MaxTpc
}

// Step returns the letter name of t.
func (t Tpc) Step() Step {
	return Step(mod(int(t)*4, NumSteps))
}

// Accidental returns the alteration of t relative to its natural letter.
// The result is only a valid Accidental when t is Valid.
func (t Tpc) Accidental() Accidental {
	return Accidental(floorDiv(int(t)+1, NumSteps))
}

// Decompose splits t into its letter and accidental. The boolean is false
// when the letter is natural and no accidental sign is needed.
func (t Tpc) Decompose() (Step, Accidental, bool) {
	acc := t.Accidental()
	return t.Step(), acc, acc != Natural
}

// Add transposes t by the interval i. It reports false when the result
// would need more than a double accidental.
func (t Tpc) Add(i Interval) (Tpc, bool) {
	res := t + Tpc(i)
	if !t.Valid() || !res.Valid() {
		return 0, false
	}
	return res, true
}

// Semitone is the pitch of t in semitones above the natural C of the same
// letter octave. C♭ gives -1 and B♯ gives 12.
func (t Tpc) Semitone() int {
	return t.Step().Semitone() + int(t.Accidental())
}

func (t Tpc) String() string {
	return t.Step().String() + t.Accidental().Symbol()
}

// ASCII spells t with b, bb, # and x.
func (t Tpc) ASCII() string {
	return t.Step().String() + t.Accidental().ASCII()
}

// Flattest returns the lowest pitch on the line of fifths.
func Flattest(first Tpc, rest ...Tpc) Tpc {
	return util.MinOf(first, rest...)
}

// Sharpest returns the highest pitch on the line of fifths.
func Sharpest(first Tpc, rest ...Tpc) Tpc {
	return util.MaxOf(first, rest...)
}

package pitch

// Step is a diatonic letter name. Steps are cyclic modulo 7.
type Step int

const (
	C Step = iota
	D
	E
	F
	G
	A
	B
)

const NumSteps = 7

var stepNames = [NumSteps]string{"C", "D", "E", "F", "G", "A", "B"}

func (s Step) String() string {
	return stepNames[s.Normalize()]
}

// Normalize folds s into C..B.
func (s Step) Normalize() Step {
	return Step(mod(int(s), NumSteps))
}

// Add moves s up by n diatonic steps, wrapping around at B.
func (s Step) Add(n int) Step {
	return Step(mod(int(s)+n, NumSteps))
}

// naturalFifths is the line-of-fifths value of the natural letter.
func (s Step) naturalFifths() int {
	// F C G D A E B sit at -1..5 and a fifth is 4 steps, so the inverse
	// of 4 (mod 7) maps a step back onto the line.
	return mod(int(s.Normalize())*2+1, NumSteps) - 1
}

// Semitone is the pitch class of the natural letter, C = 0.
func (s Step) Semitone() int {
	return [NumSteps]int{0, 2, 4, 5, 7, 9, 11}[s.Normalize()]
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

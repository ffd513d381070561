package pitch

// Interval is a named musical distance, stored as its displacement on the
// line of fifths. The diatonic size follows from the displacement.
type Interval int

const (
	Unison            Interval = 0
	MinorThird        Interval = -3
	MajorThird        Interval = 4
	DiminishedFifth   Interval = -6
	PerfectFifth      Interval = 1
	AugmentedFifth    Interval = 8
	DiminishedSeventh Interval = -9
	MinorSeventh      Interval = -2
	MajorSeventh      Interval = 5
)

// Steps is the number of letter names the interval spans, 0 for a unison
// and 2 for any kind of third.
func (i Interval) Steps() int {
	return mod(int(i)*4, NumSteps)
}

func (i Interval) String() string {
	switch i {
	case Unison:
		return "P1"
	case MinorThird:
		return "m3"
	case MajorThird:
		return "M3"
	case DiminishedFifth:
		return "d5"
	case PerfectFifth:
		return "P5"
	case AugmentedFifth:
		return "A5"
	case DiminishedSeventh:
		return "d7"
	case MinorSeventh:
		return "m7"
	case MajorSeventh:
		return "M7"
	}
	return "Interval(?)"
}

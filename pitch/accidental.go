package pitch

// Accidental is a letter's deviation from its natural pitch. The values are
// the alteration in semitones, so the set is symmetric around Natural.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// MaxAlteration is the largest number of accidentals a spelled pitch may carry.
const MaxAlteration = 2

func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

// IsDouble reports whether a is a double flat or double sharp.
func (a Accidental) IsDouble() bool {
	return a == DoubleFlat || a == DoubleSharp
}

// Symbol returns the typographic accidental sign, empty for Natural.
func (a Accidental) Symbol() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	}
	return ""
}

// ASCII returns the accidental spelled with plain characters.
func (a Accidental) ASCII() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "x"
	}
	return ""
}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "DoubleFlat"
	case Flat:
		return "Flat"
	case Natural:
		return "Natural"
	case Sharp:
		return "Sharp"
	case DoubleSharp:
		return "DoubleSharp"
	}
	return "Accidental(?)"
}

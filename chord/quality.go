package chord

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsphweid/chordquiz/pitch"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

// Quality is the kind of chord built on a root.
type Quality int

const (
	Maj Quality = iota
	Min
	Dim
	Aug
	Dom7
	Maj7
	Min7
	Min7b5
	Dim7
)

// NumQualities is the number of defined qualities.
const NumQualities = 9

type qualityInfo struct {
	intervals []pitch.Interval
	suffix    string
	long      string
	aliases   []string
}

var qualities = [NumQualities]qualityInfo{
	Maj: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth},
		suffix:    "",
		long:      "major",
		aliases:   []string{"maj", "major", "M"},
	},
	Min: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MinorThird, pitch.PerfectFifth},
		suffix:    "m",
		long:      "minor",
		aliases:   []string{"min", "minor", "m"},
	},
	Dim: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MinorThird, pitch.DiminishedFifth},
		suffix:    "m♭5",
		long:      "diminished",
		aliases:   []string{"dim", "diminished", "mb5"},
	},
	Aug: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MajorThird, pitch.AugmentedFifth},
		suffix:    "+",
		long:      "augmented",
		aliases:   []string{"aug", "augmented", "+"},
	},
	Dom7: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth, pitch.MinorSeventh},
		suffix:    "7",
		long:      "dominant seventh",
		aliases:   []string{"7", "dom7"},
	},
	Maj7: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth, pitch.MajorSeventh},
		suffix:    "maj7",
		long:      "major seventh",
		aliases:   []string{"maj7", "M7"},
	},
	Min7: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MinorThird, pitch.PerfectFifth, pitch.MinorSeventh},
		suffix:    "m7",
		long:      "minor seventh",
		aliases:   []string{"m7", "min7"},
	},
	Min7b5: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MinorThird, pitch.DiminishedFifth, pitch.MinorSeventh},
		suffix:    "m7♭5",
		long:      "half-diminished seventh",
		aliases:   []string{"m7b5", "min7b5", "halfdim"},
	},
	Dim7: {
		intervals: []pitch.Interval{pitch.Unison, pitch.MinorThird, pitch.DiminishedFifth, pitch.DiminishedSeventh},
		suffix:    "dim7",
		long:      "diminished seventh",
		aliases:   []string{"dim7", "o7"},
	},
}

// Qualities lists every quality in declaration order.
func Qualities() []Quality {
	res := make([]Quality, NumQualities)
	for i := range res {
		res[i] = Quality(i)
	}
	return res
}

// Valid reports whether q is one of the defined qualities.
func (q Quality) Valid() bool {
	return q >= 0 && q < NumQualities
}

// info falls back to Maj for an invalid q; Build rejects those before
// looking anything up.
func (q Quality) info() qualityInfo {
	if !q.Valid() {
		return qualities[Maj]
	}
	return qualities[q]
}

// Intervals returns the intervals above the root, starting with the unison.
func (q Quality) Intervals() []pitch.Interval {
	src := q.info().intervals
	res := make([]pitch.Interval, len(src))
	copy(res, src)
	return res
}

// Suffix is what follows the root in a chord symbol.
func (q Quality) Suffix() string {
	return q.info().suffix
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return q.info().long
}

// rootBounds is the representable range a chord's pitches may occupy.
func rootBounds(allowDouble bool) (pitch.Tpc, pitch.Tpc) {
	if allowDouble {
		return pitch.MinTpc, pitch.MaxTpc
	}
	return pitch.MinSingleTpc, pitch.MaxSingleTpc
}

func (q Quality) intervalRange() (pitch.Tpc, pitch.Tpc) {
	is := q.info().intervals
	tpcs := make([]pitch.Tpc, len(is))
	for i, iv := range is {
		tpcs[i] = pitch.Tpc(iv)
	}
	return pitch.Flattest(tpcs[0], tpcs[1:]...), pitch.Sharpest(tpcs[0], tpcs[1:]...)
}

// FlattestRoot is the flattest root whose chord stays within the allowed
// accidentals: its flattest tone lands exactly on the lower bound.
func (q Quality) FlattestRoot(allowDouble bool) pitch.Tpc {
	lo, _ := rootBounds(allowDouble)
	flattest, _ := q.intervalRange()
	return pitch.Sharpest(lo-flattest, lo)
}

// SharpestRoot is the sharpest root whose chord stays within the allowed
// accidentals.
func (q Quality) SharpestRoot(allowDouble bool) pitch.Tpc {
	_, hi := rootBounds(allowDouble)
	_, sharpest := q.intervalRange()
	return pitch.Flattest(hi-sharpest, hi)
}

// ParseQuality accepts the chord symbol suffix, the long name or a common
// alias, such as "m7b5", "minor" or "dim7". An empty string is major.
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	// Exact matches win so that "M7" and "m7" stay distinct.
	for _, q := range Qualities() {
		info := q.info()
		if s == info.suffix || s == info.long || slices.Contains(info.aliases, s) {
			return q, nil
		}
	}
	for _, q := range Qualities() {
		info := q.info()
		if strings.EqualFold(s, info.long) {
			return q, nil
		}
		for _, a := range info.aliases {
			if len(a) > 1 && strings.EqualFold(s, a) {
				return q, nil
			}
		}
	}
	return Maj, fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordquiz/chord"
	"github.com/jsphweid/chordquiz/logger"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	channel  = 0
	velocity = 100
	ticks    = smf.MetricTicks(960)
	maxKey   = 127
)

var ErrOutOfRange = errors.New("pitch outside the MIDI key range")

var degreeNames = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// PitchName names a MIDI key without regard to spelling, e.g. 61 is "Db4".
func PitchName(key uint8) string {
	return fmt.Sprintf("%s%d", degreeNames[key%12], int(key/12)-1)
}

// Keys returns the MIDI key of every chord tone, from the root upward.
// It fails with ErrOutOfRange if any tone is below C-1 or above G9.
func Keys(c chord.Chord) ([]uint8, error) {
	var res []uint8
	for _, p := range c.Pitches() {
		key := p.MIDI()
		if key < 0 || key > maxKey {
			return nil, fmt.Errorf("%w: %s of %s is key %d", ErrOutOfRange, p, c.DisplayName(), key)
		}
		res = append(res, uint8(key))
	}
	return res, nil
}

// Write encodes c as a single-track Standard MIDI File: all tones start
// together and are released after one beat.
func Write(w io.Writer, c chord.Chord) error {
	keys, err := Keys(c)
	if err != nil {
		return err
	}
	var track smf.Track
	for _, key := range keys {
		track.Add(0, gomidi.NoteOn(channel, key, velocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = ticks.Ticks4th()
		}
		track.Add(delta, gomidi.NoteOff(channel, key))
	}
	track.Close(0)

	var s smf.SMF
	s.TimeFormat = ticks
	s.Tracks = append(s.Tracks, track)
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi for %s: %w", c.DisplayName(), err)
	}
	return nil
}

func WriteFile(path string, c chord.Chord) error {
	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Get().Info("wrote midi file", "path", path, "chord", c.DisplayName())
	return nil
}

// ReadNotes returns the key of every note-on in r, in track order.
func ReadNotes(r io.Reader) (keys []uint8, e error) {
	// smf panics on some malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			keys, e = nil, fmt.Errorf("parsing midi: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi: %w", err)
	}
	for _, events := range s.Tracks {
		for _, event := range events {
			var ch, key, vel uint8
			if event.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}

func ReadMidiFile(filepath string) ([]uint8, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return ReadNotes(bytes.NewReader(dat))
}

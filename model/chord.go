package model

// ChordSummary describes a built chord for API responses and CLI output.
type ChordSummary struct {
	Name     string   `json:"name"`
	LongName string   `json:"long_name"`
	Root     string   `json:"root"`
	Quality  string   `json:"quality"`
	Clef     string   `json:"clef"`
	Pitches  []string `json:"pitches"`
	MidiKeys []uint8  `json:"midi_keys"`
}

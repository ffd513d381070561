package model

type RandomChordResponse struct {
	Id    string       `json:"id"`
	Chord ChordSummary `json:"chord"`
	Svg   string       `json:"svg"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

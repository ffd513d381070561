package main

import "github.com/jsphweid/chordquiz/cmd"

func main() {
	cmd.Execute()
}

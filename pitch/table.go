// Package pitch models notes of the 12-tone equal temperament system: the
// pitch class tables, and the Pitch type built on top of them.
package pitch

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// A4 is the reference pitch: 57 semitones above C0, sounding at 440Hz.
const (
	A4Offset = 57
	A4Freq   = 440.0
)

// pitchToClass maps every recognized note name to its pitch class.
// Enharmonic synonyms share a class.
var pitchToClass = map[string]int{
	"C":  0,
	"B#": 0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"Fb": 4,
	"F":  5,
	"E#": 5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
	"Cb": 11,
}

// classToNames holds the sharp and flat spelling for each pitch class.
// The seven naturals pair with themselves.
var classToNames = [12][2]string{
	{"C", "C"},
	{"C#", "Db"},
	{"D", "D"},
	{"D#", "Eb"},
	{"E", "E"},
	{"F", "F"},
	{"F#", "Gb"},
	{"G", "G"},
	{"G#", "Ab"},
	{"A", "A"},
	{"A#", "Bb"},
	{"B", "B"},
}

// naturalLetters is the diatonic letter cycle.
var naturalLetters = []string{"C", "D", "E", "F", "G", "A", "B"}

// ClassOf resolves a note name to its pitch class.
func ClassOf(name string) (int, error) {
	class, ok := pitchToClass[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNote, name)
	}
	return class, nil
}

// NameOf returns the sharp or flat spelling of a pitch class.
func NameOf(class int, preferSharp bool) string {
	names := classToNames[((class%12)+12)%12]
	if preferSharp {
		return names[0]
	}
	return names[1]
}

// LettersFrom returns the natural letter cycle rotated to begin at the given
// letter. The rotated cycle drives diatonic spelling when scales are built.
func LettersFrom(letter string) ([]string, error) {
	i := slices.Index(naturalLetters, letter)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s is not a natural letter", ErrUnknownNote, letter)
	}
	out := make([]string, 0, len(naturalLetters))
	out = append(out, naturalLetters[i:]...)
	out = append(out, naturalLetters[:i]...)
	return out, nil
}

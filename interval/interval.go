// Package interval names the distances between pitches.
package interval

import (
	"errors"
	"fmt"
)

// ErrUnknownIntervalName means a short name is not one of the 13 canonical
// interval names (P1 through P8).
var ErrUnknownIntervalName = errors.New("unknown interval name")

// shortNames and longNames are keyed by a semitone offset between 0 and 12.
var shortNames = map[int]string{
	0:  "P1",
	1:  "m2",
	2:  "M2",
	3:  "m3",
	4:  "M3",
	5:  "P4",
	6:  "TT",
	7:  "P5",
	8:  "m6",
	9:  "M6",
	10: "m7",
	11: "M7",
	12: "P8",
}

var longNames = map[int]string{
	0:  "Unison",
	1:  "Minor Second",
	2:  "Major Second",
	3:  "Minor Third",
	4:  "Major Third",
	5:  "Perfect Fourth",
	6:  "Tritone",
	7:  "Perfect Fifth",
	8:  "Minor Sixth",
	9:  "Major Sixth",
	10: "Minor Seventh",
	11: "Major Seventh",
	12: "Octave",
}

// nameToSemitones inverts shortNames for name-based construction.
var nameToSemitones = map[string]int{
	"P1": 0,
	"m2": 1,
	"M2": 2,
	"m3": 3,
	"M3": 4,
	"P4": 5,
	"TT": 6,
	"P5": 7,
	"m6": 8,
	"M6": 9,
	"m7": 10,
	"M7": 11,
	"P8": 12,
}

// Interval is a signed semitone count.
type Interval struct {
	Semitones int
}

// NewInterval creates an interval. Any integer is accepted.
func NewInterval(semitones int) Interval {
	return Interval{Semitones: semitones}
}

// FromName resolves one of the canonical short names to an interval.
func FromName(short string) (Interval, error) {
	n, ok := nameToSemitones[short]
	if !ok {
		return Interval{}, fmt.Errorf("%w: %s", ErrUnknownIntervalName, short)
	}
	return Interval{Semitones: n}, nil
}

// Name returns the interval's short or long name.
//
// The lookup offset is the raw count for negative intervals and 12 minus the
// count otherwise, matching the reference tables exactly: an interval of 0
// names as "P8"/"Octave", not the unison. Intervals whose offset falls
// outside the tables have no name and return an error.
func (i Interval) Name(short bool) (string, error) {
	offset := i.Semitones
	if offset >= 0 {
		offset = 12 - offset
	}
	table := longNames
	if short {
		table = shortNames
	}
	name, ok := table[offset]
	if !ok {
		return "", fmt.Errorf("no name for an interval of %d semitones", i.Semitones)
	}
	return name, nil
}

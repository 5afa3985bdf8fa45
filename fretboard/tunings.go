package fretboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robmorgan/muse/pitch"
)

// ErrUnknownTuning means a tuning name is not in the catalog.
var ErrUnknownTuning = errors.New("unknown tuning name")

type openString struct {
	note   string
	octave int
}

// tunings is the catalog of named tunings, low string first.
var tunings = map[string][]openString{
	"STANDARD": {{"E", 2}, {"A", 2}, {"D", 3}, {"G", 3}, {"B", 3}, {"E", 4}},
	"DROP_D":   {{"D", 2}, {"A", 2}, {"D", 3}, {"G", 3}, {"B", 3}, {"E", 4}},
	"OPEN_G":   {{"D", 2}, {"G", 2}, {"D", 3}, {"G", 3}, {"B", 3}, {"D", 4}},
	"DADGAD":   {{"D", 2}, {"A", 2}, {"D", 3}, {"G", 3}, {"A", 3}, {"D", 4}},
}

// NewTuning returns the open-string pitches of a named tuning, low string
// first. The name is case-insensitive.
func NewTuning(name string) ([]*pitch.Pitch, error) {
	entries, ok := tunings[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTuning, name)
	}
	out := make([]*pitch.Pitch, 0, len(entries))
	for _, e := range entries {
		p, err := pitch.NewPitch(e.note, e.octave)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// StandardTuning returns EADGBE.
func StandardTuning() []*pitch.Pitch {
	t, _ := NewTuning("STANDARD")
	return t
}

// Package scale derives the ordered pitch run of diatonic and modal scales,
// spelling each degree so the seven natural letters are used once each.
package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robmorgan/muse/logger"
	"github.com/robmorgan/muse/pitch"
	"golang.org/x/exp/slices"
)

// ErrUnknownScale means a scale name is not in the modal catalog.
var ErrUnknownScale = errors.New("unknown scale name")

// catalog holds the step patterns of the modal catalog. Aeolian and minor
// share a pattern under two names.
var catalog = map[string][]int{
	"MAJOR":      {2, 2, 1, 2, 2, 2, 1},
	"IONIAN":     {2, 2, 1, 2, 2, 2, 1},
	"DORIAN":     {2, 1, 2, 2, 2, 1, 2},
	"PHRYGIAN":   {1, 2, 2, 2, 1, 2, 2},
	"LYDIAN":     {2, 2, 2, 1, 2, 2, 1},
	"MIXOLYDIAN": {2, 2, 1, 2, 2, 1, 2},
	"AEOLIAN":    {2, 1, 2, 2, 1, 2, 2},
	"MINOR":      {2, 1, 2, 2, 1, 2, 2},
	"LOCRIAN":    {1, 2, 2, 1, 2, 2, 2},
}

// Sequence is the ordered pitch run of a scale. The pitches are derived once
// at construction and never change afterwards.
type Sequence struct {
	Root  *pitch.Pitch
	Steps []int

	pitches []*pitch.Pitch
}

// NewSequence builds a scale from a named pattern in the modal catalog.
// The name is case-insensitive.
func NewSequence(root *pitch.Pitch, name string) (*Sequence, error) {
	steps, ok := catalog[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScale, name)
	}
	return NewSequenceSteps(root, steps)
}

// NewSequenceSteps builds a scale from an explicit step pattern.
//
// Each degree is reached by stepping from the previous one with the octave
// pinned to the root's. Stepping spells ascending pitches sharp, so any
// non-final degree whose letter misses the expected letter of the rotated
// natural cycle is re-spelled to its enharmonic partner. The final degree
// keeps its raw spelling.
func NewSequenceSteps(root *pitch.Pitch, steps []int) (*Sequence, error) {
	log := logger.GetProjectLogger()

	letters, err := pitch.LettersFrom(root.Letter())
	if err != nil {
		return nil, err
	}

	pitches := make([]*pitch.Pitch, 0, len(steps)+1)
	pitches = append(pitches, root)
	for i, step := range steps {
		next, err := pitches[len(pitches)-1].Step(step, true)
		if err != nil {
			return nil, err
		}
		if i < len(steps)-1 {
			want := letters[(i+1)%len(letters)]
			if next.Letter() != want {
				log.Debugf("respelling %s so degree %d lands on letter %s", next, i+2, want)
				next.ToggleEnharmonic(true)
			}
		}
		pitches = append(pitches, next)
	}

	return &Sequence{
		Root:    root,
		Steps:   slices.Clone(steps),
		pitches: pitches,
	}, nil
}

// Pitches returns the derived pitch run, root first. The slice is a copy;
// the stored run stays fixed.
func (s *Sequence) Pitches() []*pitch.Pitch {
	return slices.Clone(s.pitches)
}

// Tones returns the note names of the scale in order.
func (s *Sequence) Tones() []string {
	tones := make([]string, 0, len(s.pitches))
	for _, p := range s.pitches {
		tones = append(tones, p.Note)
	}
	return tones
}

// Len returns the number of pitches in the run, octave degree included.
func (s *Sequence) Len() int {
	return len(s.pitches)
}

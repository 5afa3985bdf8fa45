// Package fretboard lays out guitar fretboards by stepping each open string
// up one semitone per fret.
package fretboard

import (
	"errors"
	"fmt"

	"github.com/robmorgan/muse/logger"
	"github.com/robmorgan/muse/pitch"
	"golang.org/x/exp/slices"
)

// ErrInvalidFretCount means a fretboard was asked for a negative number of frets.
var ErrInvalidFretCount = errors.New("invalid fret count")

// DefaultFretCount covers two full octaves per string.
const DefaultFretCount = 24

// Fretboard is the derived pitch layout of a stringed instrument. Tuning is
// stored low string first; the board is fixed once constructed.
type Fretboard struct {
	Tuning    []*pitch.Pitch
	FretCount int

	board [][]*pitch.Pitch
}

// NewFretboard derives the pitch at every fret position of every string.
// Fret 0 is the open string itself and octaves increment naturally as the
// frets climb.
func NewFretboard(tuning []*pitch.Pitch, fretCount int) (*Fretboard, error) {
	if fretCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFretCount, fretCount)
	}

	log := logger.GetProjectLogger()
	log.Debugf("deriving fretboard: %d strings, %d frets", len(tuning), fretCount)

	board := make([][]*pitch.Pitch, len(tuning))
	for s, open := range tuning {
		frets := make([]*pitch.Pitch, 0, fretCount+1)
		for f := 0; f <= fretCount; f++ {
			p, err := open.Step(f, false)
			if err != nil {
				return nil, err
			}
			frets = append(frets, p)
		}
		board[s] = frets
	}

	return &Fretboard{
		Tuning:    slices.Clone(tuning),
		FretCount: fretCount,
		board:     board,
	}, nil
}

// GetString returns the fret pitches of one string. Strings are numbered
// from the highest-pitched string down (index 0 is the top string), the
// inverse of the storage order. This mirrors how players count strings and
// is kept deliberately.
func (fb *Fretboard) GetString(i int) ([]*pitch.Pitch, error) {
	if i < 0 || i >= len(fb.board) {
		return nil, fmt.Errorf("no string at index %d", i)
	}
	return fb.board[len(fb.board)-1-i], nil
}

// At returns the pitch at a string and fret, using GetString's numbering.
func (fb *Fretboard) At(stringIdx, fret int) (*pitch.Pitch, error) {
	frets, err := fb.GetString(stringIdx)
	if err != nil {
		return nil, err
	}
	if fret < 0 || fret >= len(frets) {
		return nil, fmt.Errorf("no fret %d on string %d", fret, stringIdx)
	}
	return frets[fret], nil
}

// Board exposes the full derived board in storage (low-to-high) order.
func (fb *Fretboard) Board() [][]*pitch.Pitch {
	return fb.board
}

// StringCount returns the number of strings on the board.
func (fb *Fretboard) StringCount() int {
	return len(fb.board)
}

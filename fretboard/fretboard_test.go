package fretboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardFretboard(t *testing.T) {
	t.Parallel()

	tuning := StandardTuning()
	fb, err := NewFretboard(tuning, DefaultFretCount)
	require.NoError(t, err)
	require.Equal(t, 6, fb.StringCount())

	board := fb.Board()
	for s := range board {
		// fret 0 is the open string itself
		require.Len(t, board[s], DefaultFretCount+1)
		assert.Same(t, tuning[s], board[s][0])

		// the 12th fret is exactly one octave up
		assert.Equal(t, 12, board[s][12].DiffSemitones(board[s][0]))
	}
}

func TestStringIndexCountsFromHighest(t *testing.T) {
	t.Parallel()

	fb, err := NewFretboard(StandardTuning(), 12)
	require.NoError(t, err)

	top, err := fb.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "E4", top[0].String())

	bottom, err := fb.GetString(5)
	require.NoError(t, err)
	assert.Equal(t, "E2", bottom[0].String())

	_, err = fb.GetString(6)
	require.Error(t, err)
}

func TestAt(t *testing.T) {
	t.Parallel()

	fb, err := NewFretboard(StandardTuning(), 12)
	require.NoError(t, err)

	// 5th fret of the B string is the open high E
	p, err := fb.At(1, 5)
	require.NoError(t, err)
	assert.Equal(t, "E4", p.String())

	_, err = fb.At(0, 13)
	require.Error(t, err)
}

func TestOctavesCarryUpTheNeck(t *testing.T) {
	t.Parallel()

	fb, err := NewFretboard(StandardTuning(), 24)
	require.NoError(t, err)

	low, err := fb.GetString(5)
	require.NoError(t, err)
	assert.Equal(t, "E3", low[12].String())
	assert.Equal(t, "E4", low[24].String())
}

func TestNegativeFretCount(t *testing.T) {
	t.Parallel()

	_, err := NewFretboard(StandardTuning(), -1)
	require.ErrorIs(t, err, ErrInvalidFretCount)
}

func TestTuningCatalog(t *testing.T) {
	t.Parallel()

	dropD, err := NewTuning("drop_d")
	require.NoError(t, err)
	require.Len(t, dropD, 6)
	assert.Equal(t, "D2", dropD[0].String())
	assert.Equal(t, "E4", dropD[5].String())

	_, err = NewTuning("NASHVILLE")
	require.ErrorIs(t, err, ErrUnknownTuning)
}

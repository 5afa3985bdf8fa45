package glide

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/robmorgan/muse/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPitch(t *testing.T, note string, octave int) *pitch.Pitch {
	t.Helper()
	p, err := pitch.NewPitch(note, octave)
	require.NoError(t, err)
	return p
}

func TestTrajectoryLinear(t *testing.T) {
	t.Parallel()

	a4 := mustPitch(t, "A", 4)
	a5 := mustPitch(t, "A", 5)

	freqs, err := Trajectory(a4, a5, 12, ease.Linear)
	require.NoError(t, err)
	require.Len(t, freqs, 13)

	assert.Equal(t, a4.Freq(), freqs[0])
	assert.InDelta(t, a5.Freq(), freqs[12], 1e-9)

	// a linear glide in semitone space rises one semitone per segment
	for i := 1; i < len(freqs); i++ {
		assert.Greater(t, freqs[i], freqs[i-1])
	}
	assert.InDelta(t, 440.0*2, freqs[12], 1e-9)
}

func TestTrajectoryDescending(t *testing.T) {
	t.Parallel()

	g4 := mustPitch(t, "G", 4)
	c4 := mustPitch(t, "C", 4)

	freqs, err := Trajectory(g4, c4, 7, ease.Linear)
	require.NoError(t, err)

	for i := 1; i < len(freqs); i++ {
		assert.Less(t, freqs[i], freqs[i-1])
	}
	assert.InDelta(t, c4.Freq(), freqs[7], 1e-9)
}

func TestTrajectoryEasedEndpoints(t *testing.T) {
	t.Parallel()

	c4 := mustPitch(t, "C", 4)
	e4 := mustPitch(t, "E", 4)

	freqs, err := Trajectory(c4, e4, 10, ease.InQuart)
	require.NoError(t, err)

	// easing bends the middle but never the endpoints
	assert.Equal(t, c4.Freq(), freqs[0])
	assert.InDelta(t, e4.Freq(), freqs[10], 1e-9)
}

func TestTrajectoryNeedsSteps(t *testing.T) {
	t.Parallel()

	a4 := mustPitch(t, "A", 4)
	_, err := Trajectory(a4, a4, 0, ease.Linear)
	require.Error(t, err)
}

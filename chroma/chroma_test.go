package chroma

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/muse/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassColorRange(t *testing.T) {
	t.Parallel()

	_, err := ClassColor(-1)
	require.Error(t, err)

	_, err = ClassColor(12)
	require.Error(t, err)

	c, err := ClassColor(0)
	require.NoError(t, err)
	assert.Equal(t, colorful.Hsv(0, 0.85, 0.95).Hex(), c.Hex())
}

func TestEnharmonicsShareAColor(t *testing.T) {
	t.Parallel()

	cSharp, err := pitch.NewPitch("C#", 4)
	require.NoError(t, err)
	dFlat, err := pitch.NewPitch("Db", 4)
	require.NoError(t, err)

	assert.Equal(t, Hex(cSharp), Hex(dFlat))
}

func TestOctavesShareAColor(t *testing.T) {
	t.Parallel()

	a2, err := pitch.NewPitch("A", 2)
	require.NoError(t, err)
	a5, err := pitch.NewPitch("A", 5)
	require.NoError(t, err)

	assert.Equal(t, Hex(a2), Hex(a5))
}

func TestClassesGetDistinctHues(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for class := 0; class < 12; class++ {
		c, err := ClassColor(class)
		require.NoError(t, err)
		hex := c.Hex()
		assert.False(t, seen[hex], "duplicate color for class %d", class)
		seen[hex] = true
	}
}

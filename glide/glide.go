// Package glide computes portamento trajectories between pitches.
package glide

import (
	"fmt"
	"math"

	"github.com/fogleman/ease"
	"github.com/robmorgan/muse/pitch"
)

// Trajectory returns the frequencies of an eased slide from one pitch to
// another. The easing curve is applied in semitone space so equal curve
// increments sound equal, then converted to Hz. steps is the number of
// segments, so the result holds steps+1 frequencies with exact endpoints.
func Trajectory(from, to *pitch.Pitch, steps int, fn ease.Function) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("trajectory needs at least one step, got %d", steps)
	}

	span := float64(to.DiffSemitones(from))
	out := make([]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := fn(float64(i) / float64(steps))
		out = append(out, from.Freq()*math.Pow(2, t*span/12.0))
	}
	return out, nil
}

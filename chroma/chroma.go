// Package chroma maps pitch classes onto the color wheel for display.
package chroma

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/muse/pitch"
)

const (
	hueStep    = 30.0 // 360 degrees over 12 classes
	saturation = 0.85
	value      = 0.95
)

// ClassColor maps a pitch class onto the hue wheel, 30 degrees per class
// with C at red. Enharmonic spellings share a class and so share a color.
func ClassColor(class int) (colorful.Color, error) {
	if class < 0 || class > 11 {
		return colorful.Color{}, fmt.Errorf("pitch class out of range: %d", class)
	}
	return colorful.Hsv(float64(class)*hueStep, saturation, value), nil
}

// PitchColor returns the color of a pitch's class.
func PitchColor(p *pitch.Pitch) colorful.Color {
	class, _ := pitch.ClassOf(p.Note) // valid since construction
	c, _ := ClassColor(class)
	return c
}

// Hex returns the display hex string for a pitch's color.
func Hex(p *pitch.Pitch) string {
	return PitchColor(p).Hex()
}

package pitch

import (
	"fmt"
	"math"
)

// DefaultOctave is used when callers don't care about register.
const DefaultOctave = 4

// Pitch is a note name plus an octave. The absolute offset from C0 and the
// frequency are cached at construction since both are read-heavy and fixed
// for the life of the pitch. The only mutation is ToggleEnharmonic, which
// re-spells the note without moving it; it is not safe to call while another
// goroutine reads the same instance.
type Pitch struct {
	Note   string
	Octave int

	offset int
	freq   float64
}

// NewPitch creates a pitch from a note name and an octave.
func NewPitch(note string, octave int) (*Pitch, error) {
	class, err := ClassOf(note)
	if err != nil {
		return nil, err
	}
	offset := class + 12*octave
	return &Pitch{
		Note:   note,
		Octave: octave,
		offset: offset,
		freq:   A4Freq * math.Pow(2, float64(offset-A4Offset)/12.0),
	}, nil
}

// Freq returns the frequency in Hz, unrounded. Callers round for display.
func (p *Pitch) Freq() float64 {
	return p.freq
}

// Offset returns the number of semitones above C0.
func (p *Pitch) Offset() int {
	return p.offset
}

// DiffSemitones returns the signed semitone distance from other up to p.
// The result is not normalized and may be negative or exceed an octave.
func (p *Pitch) DiffSemitones(other *Pitch) int {
	return p.offset - other.offset
}

// MIDINote returns the MIDI note number (C0 is 12, A4 is 69).
func (p *Pitch) MIDINote() int {
	return p.offset + 12
}

// Step returns the pitch a number of semitones away. Ascending steps take
// the sharp spelling and descending steps the flat one; a zero step returns
// the receiver itself. When resetOctave is set the result keeps the
// receiver's octave instead of deriving it from the target offset.
func (p *Pitch) Step(semitones int, resetOctave bool) (*Pitch, error) {
	if semitones == 0 {
		return p, nil
	}
	target := p.offset + semitones
	if target < 0 {
		return nil, fmt.Errorf("%w: %s stepped by %d", ErrBelowC0, p, semitones)
	}
	octave := target / 12
	if resetOctave {
		octave = p.Octave
	}
	return NewPitch(NameOf(target%12, semitones > 0), octave)
}

// ToggleEnharmonic re-spells the note as its enharmonic partner, leaving
// offset and frequency untouched. Naturals pair with themselves and stay
// put. Names outside the stored pair (B#, Cb, E#, Fb) snap to the side
// selected by preferSharp.
func (p *Pitch) ToggleEnharmonic(preferSharp bool) {
	class, _ := ClassOf(p.Note) // valid since construction
	names := classToNames[class]
	switch p.Note {
	case names[0]:
		p.Note = names[1]
	case names[1]:
		p.Note = names[0]
	default:
		if preferSharp {
			p.Note = names[0]
		} else {
			p.Note = names[1]
		}
	}
}

// HasEnharmonic reports whether the pitch sits on one of the five black-key
// classes and so carries a distinct sharp and flat spelling.
func (p *Pitch) HasEnharmonic() bool {
	class, _ := ClassOf(p.Note)
	names := classToNames[class]
	return names[0] != names[1]
}

// Letter returns the natural letter of the note name.
func (p *Pitch) Letter() string {
	return p.Note[:1]
}

func (p *Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Note, p.Octave)
}

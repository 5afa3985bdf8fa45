// Package rhythm tracks musical time: tempo, time signatures and beat
// positions along a timeline.
package rhythm

import (
	"fmt"
	"math"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Metronome establishes a musical timeline from a start instant, a tempo in
// BPM and a time signature. The clock is injected so callers and tests can
// drive the timeline themselves.
type Metronome struct {
	mu        sync.Mutex
	clk       clock.Clock
	startTime time.Time
	tempo     float64
	signature TimeSignature
}

// NewMetronome creates a Metronome at 120bpm in common time.
func NewMetronome(clk clock.Clock) *Metronome {
	return &Metronome{
		clk:       clk,
		startTime: clk.Now(),
		tempo:     120.0,
		signature: CommonTime,
	}
}

// GetTempo returns the current tempo in BPM.
func (m *Metronome) GetTempo() float64 {
	return m.tempo
}

// SetTempo sets a new tempo for the Metronome. The start time will be
// adjusted so that the current beat and phase are unaffected by the tempo
// change.
func (m *Metronome) SetTempo(bpm float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	instant := m.clk.Now()
	interval := beatsToMilliseconds(1, m.tempo)
	beat := markerNumber(instant, m.startTime, interval)
	phase := markerPhase(instant, m.startTime, interval)
	newInterval := beatsToMilliseconds(1, bpm)
	shift := time.Duration(math.Round(newInterval*(phase+float64(beat)-1))) * time.Millisecond
	m.startTime = instant.Add(-shift)
	m.tempo = bpm
}

// GetSignature returns the current time signature.
func (m *Metronome) GetSignature() TimeSignature {
	return m.signature
}

// SetSignature changes the time signature. Beat numbering is unaffected;
// only bar boundaries move.
func (m *Metronome) SetSignature(sig TimeSignature) error {
	if sig.Beats <= 0 || sig.NoteValue <= 0 {
		return fmt.Errorf("invalid time signature: %d/%d", sig.Beats, sig.NoteValue)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signature = sig
	return nil
}

// GetBeatInterval returns the number of milliseconds a beat lasts.
func (m *Metronome) GetBeatInterval() float64 {
	return beatsToMilliseconds(1, m.tempo)
}

// GetBarInterval returns the number of milliseconds a bar lasts.
func (m *Metronome) GetBarInterval() float64 {
	return beatsToMilliseconds(m.signature.Beats, m.tempo)
}

// GetBeat returns the current beat number, counting from 1 at the start of
// the timeline.
func (m *Metronome) GetBeat() int {
	return markerNumber(m.clk.Now(), m.startTime, m.GetBeatInterval())
}

// GetBar returns the current bar number, counting from 1.
func (m *Metronome) GetBar() int {
	return markerNumber(m.clk.Now(), m.startTime, m.GetBarInterval())
}

// GetBeatPhase returns how far through the current beat the timeline is, in
// the half-open interval [0, 1).
func (m *Metronome) GetBeatPhase() float64 {
	return markerPhase(m.clk.Now(), m.startTime, m.GetBeatInterval())
}

// GetBeatWithinBar returns the current beat number relative to the start of
// its bar, counting from 1.
func (m *Metronome) GetBeatWithinBar() int {
	return (m.GetBeat()-1)%m.signature.Beats + 1
}

// IsDownBeat reports whether the current beat is the first beat of its bar.
func (m *Metronome) IsDownBeat() bool {
	return m.GetBeatWithinBar() == 1
}

// GetMarker returns the current position as "bar.beat".
func (m *Metronome) GetMarker() string {
	return fmt.Sprintf("%d.%d", m.GetBar(), m.GetBeatWithinBar())
}

// NoteDuration returns how long a 1/value note lasts at the current tempo
// and signature. One beat carries the signature's note value.
func (m *Metronome) NoteDuration(value int) (time.Duration, error) {
	if value <= 0 {
		return 0, fmt.Errorf("invalid note value: %d", value)
	}
	ms := m.GetBeatInterval() * float64(m.signature.NoteValue) / float64(value)
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// beatsToMilliseconds calculates milliseconds for given beats and tempo
func beatsToMilliseconds(beats int, tempo float64) float64 {
	return (60000.0 / tempo) * float64(beats)
}

// markerNumber calculates the marker number
func markerNumber(instant, start time.Time, interval float64) int {
	return int(math.Floor(instant.Sub(start).Seconds()*1000/interval)) + 1
}

// markerPhase calculates the phase of a marker
func markerPhase(instant, start time.Time, interval float64) float64 {
	ratio := instant.Sub(start).Seconds() * 1000 / interval
	return ratio - math.Floor(ratio)
}

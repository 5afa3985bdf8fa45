package scale

import "github.com/robmorgan/muse/pitch"

// Triad is a stacked-thirds chord drawn from a scale degree. Seventh is nil
// unless the triad was enumerated as extended.
type Triad struct {
	Root    *pitch.Pitch
	Third   *pitch.Pitch
	Fifth   *pitch.Pitch
	Seventh *pitch.Pitch
}

// TriadIter walks the triads of a sequence lazily. Each call to
// Sequence.Triads starts a fresh iterator.
type TriadIter struct {
	seq      *Sequence
	extended bool
	i        int
}

// Triads enumerates the stacked triads of the scale, one per stored pitch
// except the last. Third, fifth and seventh indices wrap modularly over the
// stored run, octave duplicate included.
func (s *Sequence) Triads(extended bool) *TriadIter {
	return &TriadIter{seq: s, extended: extended}
}

// Next returns the next triad, or false when the enumeration is done.
func (it *TriadIter) Next() (Triad, bool) {
	n := len(it.seq.pitches)
	if it.i >= n-1 {
		return Triad{}, false
	}
	i := it.i
	it.i++

	t := Triad{
		Root:  it.seq.pitches[i],
		Third: it.seq.pitches[(i+2)%n],
		Fifth: it.seq.pitches[(i+4)%n],
	}
	if it.extended {
		t.Seventh = it.seq.pitches[(i+6)%n]
	}
	return t, true
}

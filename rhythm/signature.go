package rhythm

// TimeSignature fixes how many beats make a bar and which note value carries
// one beat.
type TimeSignature struct {
	Beats     int // number of beats per bar
	NoteValue int // note value that represents one beat
}

// CommonTime is 4/4.
var CommonTime = TimeSignature{Beats: 4, NoteValue: 4}

// WaltzTime is 3/4.
var WaltzTime = TimeSignature{Beats: 3, NoteValue: 4}

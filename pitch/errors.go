package pitch

import "errors"

var (
	// ErrUnknownNote means a note name is not in the pitch class table.
	ErrUnknownNote = errors.New("unknown note name")

	// ErrBelowC0 means a transposition would land below C0, the lowest
	// representable pitch.
	ErrBelowC0 = errors.New("cannot step below C0")
)

package scanner

import "errors"

// Usage errors. A failed match is never an error; it is an ordinary absent
// result. These cover misuse of the scanner itself, and every operation that
// can return or panic with one of them does so before mutating any state.
var (
	// ErrNilPattern is the panic value of a matching operation given a nil
	// Pattern.
	ErrNilPattern = errors.New("scanner: nil pattern")

	// ErrOutOfRange indicates that SetPos resolved to an offset outside the
	// text.
	ErrOutOfRange = errors.New("scanner: position out of range")

	// ErrNoPreviousMatch indicates that Unscan was called without a
	// successful match since the last Reset, SetText or Unscan.
	ErrNoPreviousMatch = errors.New("scanner: no previous match to unscan")
)

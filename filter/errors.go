package filter

import "errors"

// Sentinel errors for filtering. Details (stage, criteria, glyph state) are
// attached by wrapping; test with errors.Is.
var (
	// ErrNoMatch indicates a filter stage produced zero results. This is the
	// natural "ran out of matching words" condition and is recoverable.
	ErrNoMatch = errors.New("filter: no words match")

	// ErrConfiguration indicates a case mode that is structurally impossible
	// given the bicameral/glyph state. Caller misuse, never swallowed.
	ErrConfiguration = errors.New("filter: case mode impossible with available glyphs")

	// ErrValidation indicates malformed filtering parameters.
	ErrValidation = errors.New("filter: invalid filtering parameters")
)

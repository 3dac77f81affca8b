package sample

import "errors"

// Sentinel errors for sampling. Test with errors.Is.
var (
	// ErrEmptyCollection indicates a draw from a zero-length collection.
	ErrEmptyCollection = errors.New("sample: empty collection")

	// ErrRandomness indicates a randomness value outside [0, 1].
	ErrRandomness = errors.New("sample: randomness must be in [0, 1]")

	// ErrIndexRange indicates a positional lookup past the end of the
	// collection. Recoverable: the caller asked for a rank that does not
	// exist under the current filtering.
	ErrIndexRange = errors.New("sample: index out of range")
)

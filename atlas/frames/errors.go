package frames

import "errors"

var (
	// ErrMalformedToken indicates a token that does not match the
	// ^\d+(-\d+)?$ grammar.
	ErrMalformedToken = errors.New("frames: malformed range token")

	// ErrInvertedRange indicates a span token whose start exceeds its end.
	ErrInvertedRange = errors.New("frames: range start exceeds end")
)

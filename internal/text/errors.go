package text

import "errors"

// Standard errors returned by buffer operations.
var (
	// ErrOffsetOutOfRange indicates an offset outside the buffer.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrInvalidRange indicates a range with end before start.
	ErrInvalidRange = errors.New("invalid range")
)

package pointset

import "errors"

// Sentinel errors. Callers check them with errors.Is.
var (
	// ErrFormat indicates a malformed record in a point file.
	ErrFormat = errors.New("pointset: malformed record")

	// ErrBadCount indicates a negative point count.
	ErrBadCount = errors.New("pointset: negative count")

	// ErrBadBounds indicates inverted or non-finite generation bounds.
	ErrBadBounds = errors.New("pointset: invalid bounds")
)

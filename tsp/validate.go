package tsp

import (
	"fmt"

	"github.com/katalvlaran/nntour/geom"
)

// validateInput checks the point set and options before any work starts.
// It returns n (number of points) on success.
//
// Contract:
//   - points must be non-nil (an empty, non-nil slice is valid).
//   - all coordinates must be finite.
//   - opts.Strategy must be known and opts.Buffer non-negative.
//
// Complexity: O(n) time, O(1) space.
func validateInput(points []geom.Point, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	if points == nil {
		return 0, ErrInvalidInput
	}
	if err := geom.Validate(points); err != nil {
		return 0, err
	}

	return len(points), nil
}

// validateOptions checks Options without looking at the points.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Strategy {
	case LinearScan, SortedBaseline:
		// ok
	default:
		return fmt.Errorf("tsp: %v: %w", opts.Strategy, ErrUnsupportedStrategy)
	}
	if opts.Buffer < 0 {
		return fmt.Errorf("tsp: buffer=%d < 0: %w", opts.Buffer, ErrInvalidOptions)
	}

	return nil
}

package geom

import "fmt"

// Validate checks that every point has finite coordinates.
//
// A nil or empty slice is valid here; callers decide what an absent point set
// means for them. The first offending point is reported with its index and ID,
// wrapped around ErrInvalidGeometry.
//
// Complexity: O(n) time, O(1) space.
func Validate(points []Point) error {
	for i := range points {
		if !points[i].Finite() {
			return fmt.Errorf("geom: point #%d %q (%v, %v): %w",
				i, points[i].ID, points[i].X, points[i].Y, ErrInvalidGeometry)
		}
	}

	return nil
}

// Bounds returns the axis-aligned bounding box of points as
// (minX, maxX, minY, maxY). ok is false for an empty slice.
//
// Complexity: O(n).
func Bounds(points []Point) (minX, maxX, minY, maxY float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for i := 1; i < len(points); i++ {
		p := points[i]
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return minX, maxX, minY, maxY, true
}

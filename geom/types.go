package geom

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidGeometry is returned when a point carries a NaN or ±Inf coordinate.
var ErrInvalidGeometry = errors.New("geom: non-finite coordinate")

// Point is an immutable named coordinate pair.
type Point struct {
	ID string
	X  float64
	Y  float64
}

// Pt is a shorthand constructor, handy in tests and examples.
func Pt(id string, x, y float64) Point {
	return Point{ID: id, X: x, Y: y}
}

// String renders the point as "id(x, y)" using the shortest exact float form.
func (p Point) String() string {
	return fmt.Sprintf("%s(%s, %s)", p.ID,
		strconv.FormatFloat(p.X, 'g', -1, 64),
		strconv.FormatFloat(p.Y, 'g', -1, 64))
}

// IDs returns the identifiers of points in order.
//
// Complexity: O(n) time, O(n) space.
func IDs(points []Point) []string {
	if points == nil {
		return nil
	}
	ids := make([]string, len(points))
	for i := range points {
		ids[i] = points[i].ID
	}

	return ids
}

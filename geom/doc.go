// Package geom defines the planar point model shared by every nntour package.
//
// A Point is a small value type: an identifier plus X/Y coordinates. Points are
// passed by value and never mutated after construction, so a point set can be
// shared freely between the tour builder, the evaluator and any observer.
//
// Identity is positional. Two points may carry the same coordinates (or even
// the same ID); algorithms address points by their index in the input slice,
// never by value.
//
// Distance is the plain Euclidean metric:
//
//	d(a, b) = sqrt((a.X-b.X)² + (a.Y-b.Y)²)
//
// It is pure and total for finite coordinates, d(a, a) == 0. No unit
// conversion is performed; callers must keep coordinates in consistent units.
//
// Validate rejects NaN and ±Inf coordinates with ErrInvalidGeometry so that
// non-finite values never propagate silently through a tour.
package geom

package pointset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nntour/geom"
)

// Bounds is the half-open generation rectangle [MinX,MaxX) × [MinY,MaxY).
// Degenerate bounds (Min == Max) are allowed and pin that axis.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// DefaultBounds is the 100×100 square used by the benchmark programs.
var DefaultBounds = Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}

// DefaultCount is the benchmark point-set size.
const DefaultCount = 30000

// Validate reports ErrBadBounds for inverted or non-finite bounds.
func (b Bounds) Validate() error {
	for _, v := range [...]float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("pointset: bounds %+v: %w", b, ErrBadBounds)
		}
	}
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return fmt.Errorf("pointset: bounds %+v: %w", b, ErrBadBounds)
	}

	return nil
}

// Contains reports whether p lies inside the half-open rectangle. Degenerate
// axes accept exactly their single value.
func (b Bounds) Contains(p geom.Point) bool {
	return within(p.X, b.MinX, b.MaxX) && within(p.Y, b.MinY, b.MaxY)
}

func within(v, lo, hi float64) bool {
	if lo == hi {
		return v == lo
	}

	return v >= lo && v < hi
}

// Generate returns count points drawn uniformly from b.
//
// X is drawn before Y for each point, so a given RNG stream always maps to
// the same set. count == 0 yields an empty non-nil slice.
//
// Complexity: O(count) time and space.
func Generate(count int, b Bounds, opts ...Option) ([]geom.Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("pointset: Generate(%d): %w", count, ErrBadCount)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts)

	var (
		w   = b.MaxX - b.MinX
		h   = b.MaxY - b.MinY
		pts = make([]geom.Point, count)
		x   float64
		y   float64
	)
	for i := 0; i < count; i++ {
		x = b.MinX + cfg.rng.Float64()*w
		y = b.MinY + cfg.rng.Float64()*h
		pts[i] = geom.Point{ID: cfg.idFn(i), X: x, Y: y}
	}

	return pts, nil
}

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/nntour/geom"
)

// Sentinel errors.
var (
	// ErrInvalidOptions indicates a non-positive canvas size or a margin that
	// leaves no drawable area.
	ErrInvalidOptions = errors.New("render: invalid options")

	// ErrNoPoints indicates an empty or nil point set.
	ErrNoPoints = errors.New("render: no points")
)

// Options controls the canvas geometry and styling.
type Options struct {
	Width       int
	Height      int
	Margin      float64
	PointRadius float64
	LineWidth   float64

	Background color.Color
	PointColor color.Color
	PathColor  color.Color
	StartColor color.Color
	HeadColor  color.Color
}

// DefaultOptions returns an 800×800 canvas with a white background.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      800,
		Margin:      20,
		PointRadius: 1.5,
		LineWidth:   1,
		Background:  color.White,
		PointColor:  color.RGBA{R: 160, G: 160, B: 160, A: 255},
		PathColor:   color.Black,
		StartColor:  color.RGBA{G: 180, A: 255},
		HeadColor:   color.RGBA{B: 255, A: 255},
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: canvas %dx%d: %w", o.Width, o.Height, ErrInvalidOptions)
	}
	if o.Margin < 0 || 2*o.Margin >= float64(o.Width) || 2*o.Margin >= float64(o.Height) {
		return fmt.Errorf("render: margin %v: %w", o.Margin, ErrInvalidOptions)
	}
	if o.PointRadius < 0 || o.LineWidth < 0 {
		return fmt.Errorf("render: negative stroke size: %w", ErrInvalidOptions)
	}

	return nil
}

// withDefaults fills nil colors from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.PointColor == nil {
		o.PointColor = d.PointColor
	}
	if o.PathColor == nil {
		o.PathColor = d.PathColor
	}
	if o.StartColor == nil {
		o.StartColor = d.StartColor
	}
	if o.HeadColor == nil {
		o.HeadColor = d.HeadColor
	}

	return o
}

// Renderer draws tours over a fixed point set.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	opts   Options
	points []geom.Point
	minX   float64
	minY   float64
	scale  float64
	offX   float64
	offY   float64
}

// New binds a Renderer to points. The points are validated and the world to
// pixel transform is fixed here; the aspect ratio is preserved.
func New(points []geom.Point, opts Options) (*Renderer, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if err := geom.Validate(points); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	minX, maxX, minY, maxY, _ := geom.Bounds(points)
	var (
		availW = float64(opts.Width) - 2*opts.Margin
		availH = float64(opts.Height) - 2*opts.Margin
		spanX  = maxX - minX
		spanY  = maxY - minY
		scale  = 1.0
	)
	switch {
	case spanX > 0 && spanY > 0:
		scale = min(availW/spanX, availH/spanY)
	case spanX > 0:
		scale = availW / spanX
	case spanY > 0:
		scale = availH / spanY
	}

	return &Renderer{
		opts:   opts,
		points: points,
		minX:   minX,
		minY:   minY,
		scale:  scale,
		offX:   opts.Margin + (availW-spanX*scale)/2,
		offY:   opts.Margin + (availH-spanY*scale)/2,
	}, nil
}

// Project maps a world point to canvas pixels. The y axis points up.
func (r *Renderer) Project(p geom.Point) (x, y float64) {
	x = r.offX + (p.X-r.minX)*r.scale
	y = float64(r.opts.Height) - (r.offY + (p.Y-r.minY)*r.scale)

	return x, y
}

// Draw renders every point of the set, the path through prefix, the start
// point and the head (last point of prefix). An empty prefix draws only the
// point cloud.
func (r *Renderer) Draw(prefix []geom.Point) image.Image {
	return r.draw(prefix).Image()
}

// EncodePNG writes the rendering of prefix to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, prefix []geom.Point) error {
	if err := r.draw(prefix).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}

	return nil
}

// SavePNG writes the rendering of prefix to path.
func (r *Renderer) SavePNG(path string, prefix []geom.Point) error {
	if err := r.draw(prefix).SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

func (r *Renderer) draw(prefix []geom.Point) *gg.Context {
	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	dc.SetColor(r.opts.Background)
	dc.Clear()

	if r.opts.PointRadius > 0 {
		dc.SetColor(r.opts.PointColor)
		for _, p := range r.points {
			x, y := r.Project(p)
			dc.DrawCircle(x, y, r.opts.PointRadius)
		}
		dc.Fill()
	}

	if len(prefix) == 0 {
		return dc
	}

	if len(prefix) > 1 && r.opts.LineWidth > 0 {
		dc.SetColor(r.opts.PathColor)
		dc.SetLineWidth(r.opts.LineWidth)
		x, y := r.Project(prefix[0])
		dc.MoveTo(x, y)
		for _, p := range prefix[1:] {
			x, y = r.Project(p)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	marker := max(r.opts.PointRadius*2, 3)
	x, y := r.Project(prefix[0])
	dc.SetColor(r.opts.StartColor)
	dc.DrawCircle(x, y, marker)
	dc.Fill()

	x, y = r.Project(prefix[len(prefix)-1])
	dc.SetColor(r.opts.HeadColor)
	dc.DrawCircle(x, y, marker)
	dc.Fill()

	return dc
}

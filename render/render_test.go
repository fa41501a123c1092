package render_test

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/pointset"
	"github.com/katalvlaran/nntour/render"
	"github.com/katalvlaran/nntour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []geom.Point {
	return []geom.Point{
		geom.Pt("A", 0, 0),
		geom.Pt("C", 10, 10),
		geom.Pt("B", 10, 0),
		geom.Pt("D", 0, 10),
	}
}

func smallOptions() render.Options {
	o := render.DefaultOptions()
	o.Width, o.Height, o.Margin = 120, 100, 10

	return o
}

func TestNew_Errors(t *testing.T) {
	_, err := render.New(nil, render.DefaultOptions())
	require.ErrorIs(t, err, render.ErrNoPoints)

	_, err = render.New([]geom.Point{geom.Pt("X", math.NaN(), 0)}, render.DefaultOptions())
	require.ErrorIs(t, err, geom.ErrInvalidGeometry)

	bad := render.DefaultOptions()
	bad.Width = 0
	_, err = render.New(square(), bad)
	require.ErrorIs(t, err, render.ErrInvalidOptions)

	bad = render.DefaultOptions()
	bad.Margin = 400
	_, err = render.New(square(), bad)
	require.ErrorIs(t, err, render.ErrInvalidOptions)
}

func TestProject_FitsCanvasAndKeepsAspect(t *testing.T) {
	r, err := render.New(square(), smallOptions())
	require.NoError(t, err)

	// 80px of height is the binding side; the square is centred horizontally.
	x, y := r.Project(geom.Pt("", 0, 0))
	assert.InDelta(t, 20, x, 1e-9)
	assert.InDelta(t, 90, y, 1e-9)

	x, y = r.Project(geom.Pt("", 10, 10))
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
}

func TestProject_SinglePoint(t *testing.T) {
	r, err := render.New([]geom.Point{geom.Pt("P", 5, 5)}, smallOptions())
	require.NoError(t, err)
	x, y := r.Project(geom.Pt("P", 5, 5))
	assert.InDelta(t, 60, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
}

func TestDraw_MarksStartAndHead(t *testing.T) {
	opts := smallOptions()
	r, err := render.New(square(), opts)
	require.NoError(t, err)

	tour, err := tsp.NearestNeighbor(square(), tsp.DefaultOptions())
	require.NoError(t, err)

	img := r.Draw(tour.Points[:3]) // A, B, C
	b := img.Bounds()
	assert.Equal(t, 120, b.Dx())
	assert.Equal(t, 100, b.Dy())

	sx, sy := r.Project(tour.Points[0])
	hx, hy := r.Project(tour.Points[2])
	assertColor(t, opts.StartColor, img.At(int(sx), int(sy)))
	assertColor(t, opts.HeadColor, img.At(int(hx), int(hy)))

	// Far corner of the canvas stays background.
	assertColor(t, color.White, img.At(b.Max.X-1, 0))
}

func TestEncodePNG(t *testing.T) {
	r, err := render.New(square(), smallOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf, nil))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestFrames_EveryKPlusLast(t *testing.T) {
	pts, err := pointset.Generate(20, pointset.DefaultBounds, pointset.WithSeed(1))
	require.NoError(t, err)
	r, err := render.New(pts, smallOptions())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "frames")
	run := tsp.Start(context.Background(), pts, tsp.DefaultOptions())
	n, err := render.Frames(context.Background(), r, run.Snapshots(), dir, 5)
	require.NoError(t, err)
	_, err = run.Wait()
	require.NoError(t, err)

	// Steps 5, 10, 15 and the final step 19.
	require.Equal(t, 4, n)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.FileExists(t, render.FrameName(dir, 3))
}

func TestFrames_PartialStreamWritesLast(t *testing.T) {
	r, err := render.New(square(), smallOptions())
	require.NoError(t, err)

	tour, err := tsp.NearestNeighbor(square(), tsp.DefaultOptions())
	require.NoError(t, err)

	ch := make(chan tsp.Snapshot, 2)
	ch <- tsp.Snapshot{Step: 1, Total: 3, Prefix: tour.Points[:2]}
	ch <- tsp.Snapshot{Step: 2, Total: 3, Prefix: tour.Points[:3]}
	close(ch)

	dir := t.TempDir()
	n, err := render.Frames(context.Background(), r, ch, dir, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, render.FrameName(dir, 0))
}

func TestFrames_Cancelled(t *testing.T) {
	r, err := render.New(square(), smallOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := render.Frames(ctx, r, make(chan tsp.Snapshot), t.TempDir(), 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func assertColor(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.Equal(t, [3]uint32{wr >> 8, wg >> 8, wb >> 8}, [3]uint32{gr >> 8, gg >> 8, gb >> 8})
}

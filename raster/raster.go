// Package raster renders path element streams into alpha masks
// using golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/chaisql/pathcodec"
	"github.com/cockroachdb/errors"
	"golang.org/x/image/vector"
)

var (
	// ErrEmptySize is returned when rendering into an image with no pixels.
	ErrEmptySize = errors.New("image size must be positive")

	// ErrOutOfRange is returned when a point, once mapped to pixels,
	// lies too far from the image to be rasterized.
	ErrOutOfRange = errors.New("point out of range")
)

// maxCoord bounds the pixel coordinates passed to vector.Rasterizer.
const maxCoord = 1 << 22

// Options controls how path coordinates map to pixels:
// a point p lands on pixel (p.X*Scale + Offset.X, p.Y*Scale + Offset.Y).
type Options struct {
	Scale  float64
	Offset pathcodec.Point
}

// DefaultOptions maps path units one to one onto pixels.
var DefaultOptions = Options{Scale: 1}

func (o Options) apply(p pathcodec.Point) (float64, float64) {
	return p.X*o.Scale + o.Offset.X, p.Y*o.Scale + o.Offset.Y
}

func inRange(v float64) bool {
	return v >= -maxCoord && v <= maxCoord
}

var _ pathcodec.Builder = (*Rasterizer)(nil)

// Rasterizer is a pathcodec.Builder accumulating the area covered by a path.
// Subpaths are closed implicitly when filling, as with the nonzero winding rule.
//
// Once a point maps outside of the range the rasterizer supports,
// every following call is ignored and Err reports ErrOutOfRange.
type Rasterizer struct {
	z    *vector.Rasterizer
	opts Options
	n    int
	err  error
}

// NewRasterizer returns a Rasterizer covering a w×h pixel area.
func NewRasterizer(w, h int, opts Options) *Rasterizer {
	return &Rasterizer{
		z:    vector.NewRasterizer(w, h),
		opts: opts,
	}
}

// point maps p to pixels, recording an error if it is out of range.
func (r *Rasterizer) point(p pathcodec.Point) (float32, float32, bool) {
	if r.err != nil {
		return 0, 0, false
	}

	x, y := r.opts.apply(p)
	if !inRange(x) || !inRange(y) {
		r.err = errors.Wrapf(ErrOutOfRange, "element %d: (%g, %g) maps to (%g, %g)", r.n, p.X, p.Y, x, y)
		return 0, 0, false
	}
	return float32(x), float32(y), true
}

func (r *Rasterizer) MoveTo(p pathcodec.Point) {
	x, y, ok := r.point(p)
	if ok {
		r.z.MoveTo(x, y)
	}
	r.n++
}

func (r *Rasterizer) LineTo(p pathcodec.Point) {
	x, y, ok := r.point(p)
	if ok {
		r.z.LineTo(x, y)
	}
	r.n++
}

func (r *Rasterizer) QuadCurveTo(c, p pathcodec.Point) {
	cx, cy, ok1 := r.point(c)
	x, y, ok2 := r.point(p)
	if ok1 && ok2 {
		r.z.QuadTo(cx, cy, x, y)
	}
	r.n++
}

func (r *Rasterizer) CurveTo(c1, c2, p pathcodec.Point) {
	c1x, c1y, ok1 := r.point(c1)
	c2x, c2y, ok2 := r.point(c2)
	x, y, ok3 := r.point(p)
	if ok1 && ok2 && ok3 {
		r.z.CubeTo(c1x, c1y, c2x, c2y, x, y)
	}
	r.n++
}

func (r *Rasterizer) ClosePath() {
	if r.err == nil {
		r.z.ClosePath()
	}
	r.n++
}

// Err returns the first out of range error, if any.
func (r *Rasterizer) Err() error {
	return r.err
}

// Draw composites src through the accumulated coverage onto dst.
func (r *Rasterizer) Draw(dst draw.Image, src image.Image) {
	r.z.Draw(dst, dst.Bounds(), src, image.Point{})
}

// Render decodes data and returns the coverage mask of the path
// in a w×h image.
func Render(data []byte, w, h int, opts Options) (*image.Alpha, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrEmptySize, "got %dx%d", w, h)
	}

	r := NewRasterizer(w, h, opts)
	if err := pathcodec.Decode(data, r); err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, image.Opaque)
	return dst, nil
}

// Box is an axis-aligned rectangle in path coordinates.
type Box struct {
	Min, Max pathcodec.Point
}

// Empty reports whether the box contains no point.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b Box) Dx() float64 { return b.Max.X - b.Min.X }
func (b Box) Dy() float64 { return b.Max.Y - b.Min.Y }

// Bounds returns the box enclosing every point of a stream,
// control points included. The box is empty if the stream has no point.
func Bounds(data []byte) (Box, error) {
	b := Box{
		Min: pathcodec.Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: pathcodec.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}

	s := pathcodec.NewScanner(data)
	for s.Scan() {
		for _, p := range s.Points() {
			b.Min.X = math.Min(b.Min.X, p.X)
			b.Min.Y = math.Min(b.Min.Y, p.Y)
			b.Max.X = math.Max(b.Max.X, p.X)
			b.Max.Y = math.Max(b.Max.Y, p.Y)
		}
	}
	return b, s.Err()
}

// Fit returns the options scaling b uniformly to fit a w×h image
// with margin pixels on each side.
func Fit(b Box, w, h int, margin float64) Options {
	if b.Empty() {
		return DefaultOptions
	}

	aw := float64(w) - 2*margin
	ah := float64(h) - 2*margin
	// half sizes stay finite for any box of finite points
	hdx := b.Max.X/2 - b.Min.X/2
	hdy := b.Max.Y/2 - b.Min.Y/2
	scale := 1.0
	switch {
	case hdx > 0 && hdy > 0:
		scale = math.Min(aw/2/hdx, ah/2/hdy)
	case hdx > 0:
		scale = aw / 2 / hdx
	case hdy > 0:
		scale = ah / 2 / hdy
	}

	return Options{
		Scale: scale,
		Offset: pathcodec.Point{
			X: margin - b.Min.X*scale,
			Y: margin - b.Min.Y*scale,
		},
	}
}

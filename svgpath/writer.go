package svgpath

import (
	"math"
	"strconv"

	"github.com/chaisql/pathcodec"
	"github.com/cockroachdb/errors"
)

// ErrNonFinite is returned when a coordinate cannot be written as path data.
var ErrNonFinite = errors.New("non-finite coordinate")

var _ pathcodec.Builder = (*Writer)(nil)

// Writer is a pathcodec.Builder producing SVG path data with absolute commands.
// Coordinates are written with the shortest representation that parses back
// to the same float64. NaN and infinite coordinates have no such representation:
// the first one is reported by Err.
type Writer struct {
	buf []byte
	n   int
	err error
}

func (w *Writer) cmd(c byte, pts ...pathcodec.Point) {
	w.buf = append(w.buf, c)
	w.n++
	for i, p := range pts {
		if i > 0 {
			w.buf = append(w.buf, ' ')
		}
		w.buf = w.appendFloat(p.X)
		w.buf = append(w.buf, ' ')
		w.buf = w.appendFloat(p.Y)
	}
}

func (w *Writer) appendFloat(f float64) []byte {
	if (math.IsNaN(f) || math.IsInf(f, 0)) && w.err == nil {
		w.err = errors.Wrapf(ErrNonFinite, "element %d", w.n-1)
	}
	return strconv.AppendFloat(w.buf, f, 'g', -1, 64)
}

func (w *Writer) MoveTo(p pathcodec.Point) {
	w.cmd('M', p)
}

func (w *Writer) LineTo(p pathcodec.Point) {
	w.cmd('L', p)
}

func (w *Writer) QuadCurveTo(c, p pathcodec.Point) {
	w.cmd('Q', c, p)
}

func (w *Writer) CurveTo(c1, c2, p pathcodec.Point) {
	w.cmd('C', c1, c2, p)
}

func (w *Writer) ClosePath() {
	w.cmd('Z')
}

// Bytes returns the path data written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// String returns the path data written so far.
func (w *Writer) String() string {
	return string(w.buf)
}

// Err returns the first non-finite coordinate error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Reset discards the path data and any error, retaining its memory.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.n = 0
	w.err = nil
}

// Format decodes a stream and returns it as SVG path data.
// On error, the data of the elements decoded so far is returned with the error.
// Streams holding NaN or infinite coordinates fail with ErrNonFinite.
func Format(data []byte) (string, error) {
	var w Writer
	if err := pathcodec.Decode(data, &w); err != nil {
		return w.String(), err
	}
	return w.String(), w.Err()
}

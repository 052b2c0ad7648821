// Package jsonpath converts between JSON element lists and path element streams.
//
// The JSON form is an array of objects, one per element:
//
//	[
//	  {"op": "M", "points": [[0, 0]]},
//	  {"op": "Q", "points": [[5, 5], [10, 0]]},
//	  {"op": "Z"}
//	]
//
// The op is the wire tag of the element and points are listed in wire order,
// control points first.
package jsonpath

import (
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/chaisql/pathcodec"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidElement is returned when an element of the list is malformed.
	ErrInvalidElement = errors.New("invalid element")

	// ErrNonFinite is returned when a coordinate cannot be represented in JSON.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// Parse parses a JSON element list and calls b once per element.
// Elements are validated before being passed to b: a malformed element
// stops parsing and none of the following elements are passed.
func Parse(data []byte, b pathcodec.Builder) error {
	var i int
	var perr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if perr != nil {
			return
		}
		if err != nil {
			perr = err
			return
		}

		if dataType != jsonparser.Object {
			perr = errors.Wrapf(ErrInvalidElement, "element %d: expected object, got %s", i, dataType)
			return
		}

		e, err := parseElement(value)
		if err != nil {
			perr = errors.Wrapf(err, "element %d", i)
			return
		}

		e.Apply(b)
		i++
	})
	if perr != nil {
		return perr
	}

	return errors.Wrap(err, "cannot parse element list")
}

func parseElement(data []byte) (pathcodec.Element, error) {
	op, err := jsonparser.GetString(data, "op")
	if err != nil {
		return pathcodec.Element{}, errors.Wrap(ErrInvalidElement, "missing op")
	}
	if len(op) != 1 || !pathcodec.Kind(op[0]).Valid() {
		return pathcodec.Element{}, errors.Wrapf(ErrInvalidElement, "unknown op %q", op)
	}

	e := pathcodec.Element{Kind: pathcodec.Kind(op[0])}

	var perr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if perr != nil {
			return
		}
		p, err := parsePoint(value, dataType)
		if err != nil {
			perr = err
			return
		}
		e.Points = append(e.Points, p)
	}, "points")
	if perr != nil {
		return e, perr
	}
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return e, errors.Wrap(ErrInvalidElement, err.Error())
	}

	if len(e.Points) != e.Kind.NumPoints() {
		return e, errors.Wrapf(ErrInvalidElement, "%s expects %d points, got %d", e.Kind, e.Kind.NumPoints(), len(e.Points))
	}

	return e, nil
}

func parsePoint(data []byte, dataType jsonparser.ValueType) (pathcodec.Point, error) {
	if dataType != jsonparser.Array {
		return pathcodec.Point{}, errors.Wrapf(ErrInvalidElement, "point must be an array, got %s", dataType)
	}

	var coords []float64
	var perr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if perr != nil {
			return
		}
		if dataType != jsonparser.Number {
			perr = errors.Wrapf(ErrInvalidElement, "coordinate must be a number, got %s", dataType)
			return
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			perr = errors.Wrap(ErrInvalidElement, err.Error())
			return
		}
		coords = append(coords, f)
	})
	if perr != nil {
		return pathcodec.Point{}, perr
	}
	if err != nil {
		return pathcodec.Point{}, errors.Wrap(ErrInvalidElement, err.Error())
	}
	if len(coords) != 2 {
		return pathcodec.Point{}, errors.Wrapf(ErrInvalidElement, "point must have 2 coordinates, got %d", len(coords))
	}

	return pathcodec.Point{X: coords[0], Y: coords[1]}, nil
}

// Encode parses a JSON element list and appends the encoded elements to dst.
func Encode(dst []byte, data []byte) ([]byte, error) {
	enc := pathcodec.NewEncoder(&dst)
	err := Parse(data, enc)
	return dst, err
}

var _ pathcodec.Builder = (*Writer)(nil)

// Writer is a pathcodec.Builder producing a JSON element list.
// Call Bytes once every element has been written.
type Writer struct {
	buf []byte
	n   int
	err error
}

func (w *Writer) element(k pathcodec.Kind, pts ...pathcodec.Point) {
	if w.n == 0 {
		w.buf = append(w.buf, '[')
	} else {
		w.buf = append(w.buf, ',')
	}
	w.n++

	w.buf = append(w.buf, `{"op":"`...)
	w.buf = append(w.buf, byte(k))
	w.buf = append(w.buf, '"')
	if len(pts) > 0 {
		w.buf = append(w.buf, `,"points":[`...)
		for i, p := range pts {
			if i > 0 {
				w.buf = append(w.buf, ',')
			}
			w.buf = append(w.buf, '[')
			w.buf = w.appendFloat(p.X)
			w.buf = append(w.buf, ',')
			w.buf = w.appendFloat(p.Y)
			w.buf = append(w.buf, ']')
		}
		w.buf = append(w.buf, ']')
	}
	w.buf = append(w.buf, '}')
}

func (w *Writer) appendFloat(f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if w.err == nil {
			w.err = errors.Wrapf(ErrNonFinite, "element %d", w.n-1)
		}
		return append(w.buf, "null"...)
	}
	return strconv.AppendFloat(w.buf, f, 'g', -1, 64)
}

func (w *Writer) MoveTo(p pathcodec.Point) {
	w.element(pathcodec.Move, p)
}

func (w *Writer) LineTo(p pathcodec.Point) {
	w.element(pathcodec.Line, p)
}

func (w *Writer) QuadCurveTo(c, p pathcodec.Point) {
	w.element(pathcodec.QuadraticCurve, c, p)
}

func (w *Writer) CurveTo(c1, c2, p pathcodec.Point) {
	w.element(pathcodec.CubicCurve, c1, c2, p)
}

func (w *Writer) ClosePath() {
	w.element(pathcodec.Close)
}

// Bytes returns the JSON element list, or the first coordinate error.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.n == 0 {
		return []byte("[]"), nil
	}
	return append(w.buf[:len(w.buf):len(w.buf)], ']'), nil
}

// Marshal decodes a stream and returns it as a JSON element list.
func Marshal(data []byte) ([]byte, error) {
	var w Writer
	if err := pathcodec.Decode(data, &w); err != nil {
		return nil, err
	}
	return w.Bytes()
}

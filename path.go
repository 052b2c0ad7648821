package pathcodec

import (
	"strconv"
	"strings"

	"github.com/chaisql/pathcodec/internal/encoding"
	"golang.org/x/exp/constraints"
)

// Point is a position in the plane. No unit system is imposed.
type Point struct {
	X, Y float64
}

// Pt returns a Point from coordinates of any floating point type,
// typically the float32 coordinates used by graphics libraries.
func Pt[F constraints.Float](x, y F) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Kind identifies the operation of a path element.
// Its value is the tag byte used on the wire.
type Kind byte

// Path element kinds.
const (
	Move           Kind = Kind(encoding.MoveTag)
	Line           Kind = Kind(encoding.LineTag)
	QuadraticCurve Kind = Kind(encoding.QuadraticCurveTag)
	CubicCurve     Kind = Kind(encoding.CubicCurveTag)
	Close          Kind = Kind(encoding.CloseTag)
)

// Kinds lists every known element kind.
var Kinds = []Kind{Move, Line, QuadraticCurve, CubicCurve, Close}

// Valid reports whether k is a known element kind.
func (k Kind) Valid() bool {
	_, ok := encoding.NumPoints(byte(k))
	return ok
}

// NumPoints returns the number of points carried by an element of kind k,
// or -1 if k is unknown.
func (k Kind) NumPoints() int {
	n, ok := encoding.NumPoints(byte(k))
	if !ok {
		return -1
	}
	return n
}

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Line:
		return "line"
	case QuadraticCurve:
		return "quadratic curve"
	case CubicCurve:
		return "cubic curve"
	case Close:
		return "close"
	}
	return "unknown(" + strconv.Quote(string(rune(k))) + ")"
}

// Element is a single drawing operation with its points.
// For curves the control points come first and the end point last.
type Element struct {
	Kind   Kind
	Points []Point
}

func MoveTo(p Point) Element {
	return Element{Kind: Move, Points: []Point{p}}
}

func LineTo(p Point) Element {
	return Element{Kind: Line, Points: []Point{p}}
}

func QuadTo(c, p Point) Element {
	return Element{Kind: QuadraticCurve, Points: []Point{c, p}}
}

func CubeTo(c1, c2, p Point) Element {
	return Element{Kind: CubicCurve, Points: []Point{c1, c2, p}}
}

func ClosePath() Element {
	return Element{Kind: Close}
}

// End returns the end point of the element.
// The second value is false for Close, which carries no point.
func (e Element) End() (Point, bool) {
	if len(e.Points) == 0 {
		return Point{}, false
	}
	return e.Points[len(e.Points)-1], true
}

// Apply calls the Builder method matching the element kind.
// Elements of unknown kind or with too few points are ignored.
func (e Element) Apply(b Builder) {
	if len(e.Points) < e.Kind.NumPoints() {
		return
	}

	switch e.Kind {
	case Move:
		b.MoveTo(e.Points[0])
	case Line:
		b.LineTo(e.Points[0])
	case QuadraticCurve:
		b.QuadCurveTo(e.Points[0], e.Points[1])
	case CubicCurve:
		b.CurveTo(e.Points[0], e.Points[1], e.Points[2])
	case Close:
		b.ClosePath()
	}
}

// Path is an in-memory sequence of elements.
// A *Path is a Builder: decoding into it records every element in order.
type Path []Element

func (p *Path) MoveTo(pt Point) {
	*p = append(*p, MoveTo(pt))
}

func (p *Path) LineTo(pt Point) {
	*p = append(*p, LineTo(pt))
}

func (p *Path) QuadCurveTo(c, pt Point) {
	*p = append(*p, QuadTo(c, pt))
}

func (p *Path) CurveTo(c1, c2, pt Point) {
	*p = append(*p, CubeTo(c1, c2, pt))
}

func (p *Path) ClosePath() {
	*p = append(*p, ClosePath())
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Replay calls the Builder once per element, in order.
func (p Path) Replay(b Builder) {
	for _, e := range p {
		e.Apply(b)
	}
}

// Encode appends the encoded elements of p to dst.
func (p Path) Encode(dst []byte) []byte {
	enc := NewEncoder(&dst)
	p.Replay(enc)
	return dst
}

// Subpaths returns the number of Move elements in p.
func (p Path) Subpaths() int {
	var n int
	for _, e := range p {
		if e.Kind == Move {
			n++
		}
	}
	return n
}

// String returns a textual form of the path close to the SVG path data syntax.
func (p Path) String() string {
	var sb strings.Builder
	for i, e := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(e.Kind))
		for j, pt := range e.Points {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
	}
	return sb.String()
}

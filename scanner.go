package pathcodec

import (
	"github.com/chaisql/pathcodec/internal/encoding"
)

// Scanner reads the records of a stream one at a time.
//
//	s := pathcodec.NewScanner(data)
//	for s.Scan() {
//		e := s.Element()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
//
// Scan stops at the end of the data or at the first malformed record.
type Scanner struct {
	data []byte
	off  int // offset of the next record
	cur  int // offset of the current record
	kind Kind
	pts  [3]Point
	n    int
	err  error

	coords [6]float64
}

// NewScanner returns a Scanner reading from data.
// The Scanner never modifies data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data, cur: -1}
}

// Scan advances to the next record and reports whether one was decoded.
// It returns false at the end of the data or when an error occurred,
// in which case Err returns it.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.off >= len(s.data) {
		return false
	}

	tag := s.data[s.off]
	size, ok := encoding.PayloadSize(tag)
	if !ok {
		s.err = newFormatError(s.off, tag, UnknownTag)
		return false
	}

	payload := s.data[s.off+1:]
	if len(payload) < size {
		s.err = newFormatError(s.off, tag, TruncatedRecord)
		return false
	}

	coords := encoding.DecodeCoords(s.coords[:0], payload, size/encoding.Float64Size)
	n := len(coords) / 2
	for i := 0; i < n; i++ {
		s.pts[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}

	s.kind = Kind(tag)
	s.n = n
	s.cur = s.off
	s.off += 1 + size
	return true
}

// Kind returns the kind of the current record.
func (s *Scanner) Kind() Kind {
	return s.kind
}

// Points returns the points of the current record.
// The returned slice is only valid until the next call to Scan.
func (s *Scanner) Points() []Point {
	return s.pts[:s.n]
}

// Element returns a copy of the current record.
func (s *Scanner) Element() Element {
	e := Element{Kind: s.kind}
	if s.n > 0 {
		e.Points = make([]Point, s.n)
		copy(e.Points, s.pts[:s.n])
	}
	return e
}

// Offset returns the offset of the tag byte of the current record.
func (s *Scanner) Offset() int {
	return s.cur
}

// Err returns the first error encountered by Scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) apply(b Builder) {
	switch s.kind {
	case Move:
		b.MoveTo(s.pts[0])
	case Line:
		b.LineTo(s.pts[0])
	case QuadraticCurve:
		b.QuadCurveTo(s.pts[0], s.pts[1])
	case CubicCurve:
		b.CurveTo(s.pts[0], s.pts[1], s.pts[2])
	case Close:
		b.ClosePath()
	}
}

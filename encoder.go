package pathcodec

import (
	"github.com/chaisql/pathcodec/internal/encoding"
)

// AppendMove appends a move record to dst and returns the extended slice.
func AppendMove(dst []byte, p Point) []byte {
	return encoding.EncodeMove(dst, p.X, p.Y)
}

// AppendLine appends a line record to dst and returns the extended slice.
func AppendLine(dst []byte, p Point) []byte {
	return encoding.EncodeLine(dst, p.X, p.Y)
}

// AppendQuadraticCurve appends a quadratic curve record to dst and returns the extended slice.
func AppendQuadraticCurve(dst []byte, c, p Point) []byte {
	return encoding.EncodeQuadraticCurve(dst, c.X, c.Y, p.X, p.Y)
}

// AppendCubicCurve appends a cubic curve record to dst and returns the extended slice.
func AppendCubicCurve(dst []byte, c1, c2, p Point) []byte {
	return encoding.EncodeCubicCurve(dst, c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// AppendClose appends a close record to dst and returns the extended slice.
func AppendClose(dst []byte) []byte {
	return encoding.EncodeClose(dst)
}

// AppendElement appends the record of e to dst.
// Elements of unknown kind or with too few points are skipped.
func AppendElement(dst []byte, e Element) []byte {
	e.Apply(NewEncoder(&dst))
	return dst
}

// An Encoder appends path records to a byte slice owned by the caller.
// Each method appends exactly one record and never rewrites previous bytes.
// The Encoder implements Builder, so decoding into an Encoder copies a stream.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf *[]byte
}

// NewEncoder returns an Encoder appending to *buf.
// If buf is nil, the Encoder uses its own buffer, available through Bytes.
func NewEncoder(buf *[]byte) *Encoder {
	if buf == nil {
		buf = new([]byte)
	}
	return &Encoder{buf: buf}
}

func (e *Encoder) MoveTo(p Point) {
	*e.buf = AppendMove(*e.buf, p)
}

func (e *Encoder) LineTo(p Point) {
	*e.buf = AppendLine(*e.buf, p)
}

func (e *Encoder) QuadCurveTo(c, p Point) {
	*e.buf = AppendQuadraticCurve(*e.buf, c, p)
}

func (e *Encoder) CurveTo(c1, c2, p Point) {
	*e.buf = AppendCubicCurve(*e.buf, c1, c2, p)
}

func (e *Encoder) ClosePath() {
	*e.buf = AppendClose(*e.buf)
}

// Bytes returns the encoded stream.
func (e *Encoder) Bytes() []byte {
	return *e.buf
}

// Len returns the size of the encoded stream.
func (e *Encoder) Len() int {
	return len(*e.buf)
}

// Reset truncates the buffer, retaining its memory.
func (e *Encoder) Reset() {
	*e.buf = (*e.buf)[:0]
}

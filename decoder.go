package pathcodec

// Builder consumes decoded path elements.
// Decode calls exactly one method per record, in stream order.
// For curves the control points come first and the end point last.
type Builder interface {
	MoveTo(p Point)
	LineTo(p Point)
	QuadCurveTo(c, p Point)
	CurveTo(c1, c2, p Point)
	ClosePath()
}

// Decode parses data and calls b once per record.
// It stops at the end of data or at the first malformed record,
// returning an error matching ErrInvalidFormat in the latter case.
// Records decoded before the error have already been passed to b.
func Decode(data []byte, b Builder) error {
	s := NewScanner(data)
	for s.Scan() {
		s.apply(b)
	}
	return s.Err()
}

// DecodePath decodes data into a new Path.
// On error, the returned Path holds the elements decoded before the failure.
func DecodePath(data []byte) (Path, error) {
	var p Path
	err := Decode(data, &p)
	return p, err
}

// Validate checks that data is a well-formed stream.
// It only checks the structure of the records, not the geometry.
func Validate(data []byte) error {
	return Decode(data, discard{})
}

// Count returns the number of records of each kind in data.
func Count(data []byte) (map[Kind]int, error) {
	counts := make(map[Kind]int)
	s := NewScanner(data)
	for s.Scan() {
		counts[s.Kind()]++
	}
	return counts, s.Err()
}

// Transcode copies the records of data to the end of dst.
// Only the well-formed prefix of data is copied if an error occurs.
func Transcode(dst, data []byte) ([]byte, error) {
	enc := NewEncoder(&dst)
	err := Decode(data, enc)
	return dst, err
}

type discard struct{}

func (discard) MoveTo(Point)                {}
func (discard) LineTo(Point)                {}
func (discard) QuadCurveTo(Point, Point)    {}
func (discard) CurveTo(Point, Point, Point) {}
func (discard) ClosePath()                  {}

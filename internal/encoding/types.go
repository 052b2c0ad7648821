package encoding

// Tags used to identify path records.
// Each record is encoded as one tag byte followed by a fixed number
// of coordinates, determined solely by the tag.
// Tags are printable ASCII so that a hex dump of a stream stays readable.
const (
	MoveTag           byte = 'M'
	LineTag           byte = 'L'
	QuadraticCurveTag byte = 'Q'
	CubicCurveTag     byte = 'C'
	CloseTag          byte = 'Z'
)

// Float64Size is the size in bytes of one encoded coordinate.
const Float64Size = 8

// PointSize is the size in bytes of one encoded point.
const PointSize = 2 * Float64Size

// NumPoints returns the number of points carried by a record with
// the given tag. The second value is false if the tag is unknown.
func NumPoints(tag byte) (int, bool) {
	switch tag {
	case MoveTag, LineTag:
		return 1, true
	case QuadraticCurveTag:
		return 2, true
	case CubicCurveTag:
		return 3, true
	case CloseTag:
		return 0, true
	}

	return 0, false
}

// PayloadSize returns the number of bytes following a tag byte.
// The second value is false if the tag is unknown.
func PayloadSize(tag byte) (int, bool) {
	n, ok := NumPoints(tag)
	return n * PointSize, ok
}

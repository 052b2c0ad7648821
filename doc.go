/*
Package pathcodec implements a compact binary codec for two-dimensional vector paths.

A path is a sequence of drawing operations: move, line, quadratic curve, cubic curve
and close. The codec turns that sequence into bytes that can be stored or sent
anywhere, independently of any graphics API, and replays the bytes later against a
consumer that rebuilds the path.

Wire format

A stream is a sequence of records. Each record starts with a one byte ASCII tag,
immediately followed by the coordinates of its points, each coordinate being an
IEEE-754 binary64 value in little-endian byte order:

	'M' move             x y                       17 bytes
	'L' line             x y                       17 bytes
	'Q' quadratic curve  cx cy x y                 33 bytes
	'C' cubic curve      c1x c1y c2x c2y x y       49 bytes
	'Z' close                                       1 byte

There is no header, no length prefix, no version and no checksum: an empty byte
slice is a valid, empty path. Because nothing guards the content, a corrupted
stream that still looks like a valid sequence of records (for example a tag byte
flipped into another valid tag with a payload of the same size) cannot be told
apart from legitimate data.

Encoding

An Encoder appends one record per call to a byte slice owned by the caller.
Encoding never fails and never validates the order of operations: producing a
stream whose first element is not a move is allowed, it is the producer's concern.

	var buf []byte
	enc := pathcodec.NewEncoder(&buf)
	enc.MoveTo(pathcodec.Point{X: 0, Y: 0})
	enc.LineTo(pathcodec.Point{X: 10, Y: 0})
	enc.ClosePath()

Decoding

Decode parses a stream front to back and calls a Builder once per record,
in stream order. Handlers, ElementFunc and *Path adapt the Builder interface
to per-kind callbacks, a single tagged callback, or an in-memory element list.

	var p pathcodec.Path
	err := pathcodec.Decode(buf, &p)

Decoding stops at the first malformed record and returns an error matching
ErrInvalidFormat. The offset of the offending tag byte is available through
FormatError. Elements decoded before the error have already been delivered.

Decoding never modifies the input, so the same buffer can be decoded any
number of times, including concurrently.
*/
package pathcodec

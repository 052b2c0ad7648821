package encoding

import (
	"encoding/binary"
	"math"
)

// AppendFloat64 appends the little-endian IEEE-754 binary64
// representation of x to dst.
func AppendFloat64(dst []byte, x float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
}

// DecodeFloat64 decodes the first 8 bytes of b.
// It panics if b is shorter than 8 bytes.
func DecodeFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

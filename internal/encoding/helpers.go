package encoding

func write0(dst []byte, tag byte) []byte {
	return append(dst, tag)
}

func write2(dst []byte, tag byte, x, y float64) []byte {
	dst = append(dst, tag)
	dst = AppendFloat64(dst, x)
	return AppendFloat64(dst, y)
}

func write4(dst []byte, tag byte, x1, y1, x2, y2 float64) []byte {
	dst = write2(dst, tag, x1, y1)
	dst = AppendFloat64(dst, x2)
	return AppendFloat64(dst, y2)
}

func write6(dst []byte, tag byte, x1, y1, x2, y2, x3, y3 float64) []byte {
	dst = write4(dst, tag, x1, y1, x2, y2)
	dst = AppendFloat64(dst, x3)
	return AppendFloat64(dst, y3)
}

func EncodeMove(dst []byte, x, y float64) []byte {
	return write2(dst, MoveTag, x, y)
}

func EncodeLine(dst []byte, x, y float64) []byte {
	return write2(dst, LineTag, x, y)
}

func EncodeQuadraticCurve(dst []byte, cx, cy, x, y float64) []byte {
	return write4(dst, QuadraticCurveTag, cx, cy, x, y)
}

func EncodeCubicCurve(dst []byte, c1x, c1y, c2x, c2y, x, y float64) []byte {
	return write6(dst, CubicCurveTag, c1x, c1y, c2x, c2y, x, y)
}

func EncodeClose(dst []byte) []byte {
	return write0(dst, CloseTag)
}

// DecodeCoords decodes n coordinates from b into dst and returns it.
// b must hold at least n*Float64Size bytes.
func DecodeCoords(dst []float64, b []byte, n int) []float64 {
	for i := 0; i < n; i++ {
		dst = append(dst, DecodeFloat64(b[i*Float64Size:]))
	}
	return dst
}

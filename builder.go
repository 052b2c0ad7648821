package pathcodec

var (
	_ Builder = (*Path)(nil)
	_ Builder = (*Encoder)(nil)
	_ Builder = Handlers{}
	_ Builder = ElementFunc(nil)
)

// Handlers adapts a set of optional per-kind callbacks to the Builder interface.
// Nil callbacks are skipped.
type Handlers struct {
	Move           func(p Point)
	Line           func(p Point)
	QuadraticCurve func(c, p Point)
	CubicCurve     func(c1, c2, p Point)
	Close          func()
}

func (h Handlers) MoveTo(p Point) {
	if h.Move != nil {
		h.Move(p)
	}
}

func (h Handlers) LineTo(p Point) {
	if h.Line != nil {
		h.Line(p)
	}
}

func (h Handlers) QuadCurveTo(c, p Point) {
	if h.QuadraticCurve != nil {
		h.QuadraticCurve(c, p)
	}
}

func (h Handlers) CurveTo(c1, c2, p Point) {
	if h.CubicCurve != nil {
		h.CubicCurve(c1, c2, p)
	}
}

func (h Handlers) ClosePath() {
	if h.Close != nil {
		h.Close()
	}
}

// ElementFunc adapts a single callback receiving every element to the Builder interface.
// The points slice is empty for Close.
type ElementFunc func(kind Kind, points []Point)

func (f ElementFunc) MoveTo(p Point) {
	f(Move, []Point{p})
}

func (f ElementFunc) LineTo(p Point) {
	f(Line, []Point{p})
}

func (f ElementFunc) QuadCurveTo(c, p Point) {
	f(QuadraticCurve, []Point{c, p})
}

func (f ElementFunc) CurveTo(c1, c2, p Point) {
	f(CubicCurve, []Point{c1, c2, p})
}

func (f ElementFunc) ClosePath() {
	f(Close, nil)
}

// Tee returns a Builder forwarding every call to each of bs, in order.
func Tee(bs ...Builder) Builder {
	return tee(bs)
}

type tee []Builder

func (t tee) MoveTo(p Point) {
	for _, b := range t {
		b.MoveTo(p)
	}
}

func (t tee) LineTo(p Point) {
	for _, b := range t {
		b.LineTo(p)
	}
}

func (t tee) QuadCurveTo(c, p Point) {
	for _, b := range t {
		b.QuadCurveTo(c, p)
	}
}

func (t tee) CurveTo(c1, c2, p Point) {
	for _, b := range t {
		b.CurveTo(c1, c2, p)
	}
}

func (t tee) ClosePath() {
	for _, b := range t {
		b.ClosePath()
	}
}

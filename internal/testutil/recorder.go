package testutil

import (
	"github.com/chaisql/pathcodec"
)

// Recorder is a Builder recording every call as a string, in order.
type Recorder struct {
	Calls []string
}

func (r *Recorder) MoveTo(p pathcodec.Point) {
	r.Calls = append(r.Calls, pathcodec.Path{pathcodec.MoveTo(p)}.String())
}

func (r *Recorder) LineTo(p pathcodec.Point) {
	r.Calls = append(r.Calls, pathcodec.Path{pathcodec.LineTo(p)}.String())
}

func (r *Recorder) QuadCurveTo(c, p pathcodec.Point) {
	r.Calls = append(r.Calls, pathcodec.Path{pathcodec.QuadTo(c, p)}.String())
}

func (r *Recorder) CurveTo(c1, c2, p pathcodec.Point) {
	r.Calls = append(r.Calls, pathcodec.Path{pathcodec.CubeTo(c1, c2, p)}.String())
}

func (r *Recorder) ClosePath() {
	r.Calls = append(r.Calls, "Z")
}

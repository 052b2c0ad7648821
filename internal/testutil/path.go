package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chaisql/pathcodec"
	"github.com/google/go-cmp/cmp"
)

// SamplePath returns a path exercising every element kind over two subpaths.
func SamplePath() pathcodec.Path {
	return pathcodec.Path{
		pathcodec.MoveTo(pathcodec.Point{X: 0, Y: 0}),
		pathcodec.LineTo(pathcodec.Point{X: 10, Y: 0}),
		pathcodec.QuadTo(pathcodec.Point{X: 15, Y: 5}, pathcodec.Point{X: 10, Y: 10}),
		pathcodec.CubeTo(pathcodec.Point{X: 7.5, Y: 12}, pathcodec.Point{X: 2.5, Y: 12}, pathcodec.Point{X: 0, Y: 10}),
		pathcodec.ClosePath(),
		pathcodec.MoveTo(pathcodec.Point{X: -1.25, Y: 1e-9}),
		pathcodec.LineTo(pathcodec.Point{X: math.MaxFloat64, Y: -math.SmallestNonzeroFloat64}),
	}
}

// RandomPath returns a path of n elements picked at random from every kind,
// with arbitrary finite coordinates. The first element is not forced to be a move.
func RandomPath(rng *rand.Rand, n int) pathcodec.Path {
	pt := func() pathcodec.Point {
		return pathcodec.Point{
			X: (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(20)-10)),
			Y: (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(20)-10)),
		}
	}

	p := make(pathcodec.Path, 0, n)
	for i := 0; i < n; i++ {
		switch pathcodec.Kinds[rng.Intn(len(pathcodec.Kinds))] {
		case pathcodec.Move:
			p = append(p, pathcodec.MoveTo(pt()))
		case pathcodec.Line:
			p = append(p, pathcodec.LineTo(pt()))
		case pathcodec.QuadraticCurve:
			p = append(p, pathcodec.QuadTo(pt(), pt()))
		case pathcodec.CubicCurve:
			p = append(p, pathcodec.CubeTo(pt(), pt(), pt()))
		case pathcodec.Close:
			p = append(p, pathcodec.ClosePath())
		}
	}
	return p
}

// RequirePathEqual fails the test if want and got differ.
// Coordinates are compared exactly.
func RequirePathEqual(t testing.TB, want, got pathcodec.Path) {
	t.Helper()

	if diff := cmp.Diff(normalize(want), normalize(got)); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

// empty and nil point slices are equivalent
func normalize(p pathcodec.Path) pathcodec.Path {
	out := make(pathcodec.Path, len(p))
	for i, e := range p {
		if len(e.Points) == 0 {
			e.Points = nil
		}
		out[i] = e
	}
	return out
}

package svgpath_test

import (
	"math"
	"testing"

	"github.com/chaisql/pathcodec"
	"github.com/chaisql/pathcodec/internal/testutil"
	"github.com/chaisql/pathcodec/svgpath"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) pathcodec.Point {
	return pathcodec.Point{X: x, Y: y}
}

func TestParse(t *testing.T) {
	tests := []struct {
		d    string
		want pathcodec.Path
	}{
		{"", nil},
		{"  ", nil},
		{"M1 2", pathcodec.Path{pathcodec.MoveTo(pt(1, 2))}},
		{"M1,2L3,4z", pathcodec.Path{
			pathcodec.MoveTo(pt(1, 2)),
			pathcodec.LineTo(pt(3, 4)),
			pathcodec.ClosePath(),
		}},
		{"M1 2 3 4 5 6", pathcodec.Path{
			pathcodec.MoveTo(pt(1, 2)),
			pathcodec.LineTo(pt(3, 4)),
			pathcodec.LineTo(pt(5, 6)),
		}},
		{"m1 2 3 4", pathcodec.Path{
			pathcodec.MoveTo(pt(1, 2)),
			pathcodec.LineTo(pt(4, 6)),
		}},
		{"M10 10H20V30h-5v-5", pathcodec.Path{
			pathcodec.MoveTo(pt(10, 10)),
			pathcodec.LineTo(pt(20, 10)),
			pathcodec.LineTo(pt(20, 30)),
			pathcodec.LineTo(pt(15, 30)),
			pathcodec.LineTo(pt(15, 25)),
		}},
		{"M0 0Q5 5 10 0T20 0", pathcodec.Path{
			pathcodec.MoveTo(pt(0, 0)),
			pathcodec.QuadTo(pt(5, 5), pt(10, 0)),
			pathcodec.QuadTo(pt(15, -5), pt(20, 0)),
		}},
		{"M0 0C0 5 5 5 5 0S10 -5 10 0", pathcodec.Path{
			pathcodec.MoveTo(pt(0, 0)),
			pathcodec.CubeTo(pt(0, 5), pt(5, 5), pt(5, 0)),
			pathcodec.CubeTo(pt(5, -5), pt(10, -5), pt(10, 0)),
		}},
		{"M0 0S1 1 2 0", pathcodec.Path{
			pathcodec.MoveTo(pt(0, 0)),
			pathcodec.CubeTo(pt(0, 0), pt(1, 1), pt(2, 0)),
		}},
		{"M1 1l1 0 0 1zl2 2", pathcodec.Path{
			pathcodec.MoveTo(pt(1, 1)),
			pathcodec.LineTo(pt(2, 1)),
			pathcodec.LineTo(pt(2, 2)),
			pathcodec.ClosePath(),
			pathcodec.LineTo(pt(3, 3)),
		}},
		{"M.5-.5l1e2 -2.5e-1", pathcodec.Path{
			pathcodec.MoveTo(pt(0.5, -0.5)),
			pathcodec.LineTo(pt(100.5, -0.75)),
		}},
	}

	for _, test := range tests {
		t.Run(test.d, func(t *testing.T) {
			var p pathcodec.Path
			err := svgpath.Parse(test.d, &p)
			require.NoError(t, err)
			testutil.RequirePathEqual(t, test.want, p)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		d      string
		target error
	}{
		{"L1 2", svgpath.ErrSyntax},
		{"M1", svgpath.ErrSyntax},
		{"M1 2 X", svgpath.ErrSyntax},
		{"M1 2 C1 2 3", svgpath.ErrSyntax},
		{"M1 2 A1 1 0 0 1 3 3", svgpath.ErrUnsupported},
	}

	for _, test := range tests {
		t.Run(test.d, func(t *testing.T) {
			err := svgpath.Parse(test.d, &pathcodec.Path{})
			require.Error(t, err)
			require.True(t, errors.Is(err, test.target), "got %v", err)
		})
	}
}

func TestWriter(t *testing.T) {
	var w svgpath.Writer
	testutil.SamplePath()[:5].Replay(&w)
	require.Equal(t, "M0 0L10 0Q15 5 10 10C7.5 12 2.5 12 0 10Z", w.String())

	w.Reset()
	require.Empty(t, w.Bytes())
}

func TestEncodeFormatRoundTrip(t *testing.T) {
	d := "M0 0L10 0Q15 5 10 10C7.5 12 2.5 12 0 10ZM-1.25 1e-09L0.1 0.2"

	data, err := svgpath.Encode(nil, d)
	require.NoError(t, err)

	got, err := svgpath.Format(data)
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestFormatInvalidStream(t *testing.T) {
	data := pathcodec.AppendMove(nil, pt(1, 2))
	data = append(data, 'L', 0, 0)

	got, err := svgpath.Format(data)
	require.True(t, errors.Is(err, pathcodec.ErrInvalidFormat))
	require.Equal(t, "M1 2", got)
}

func TestFormatNonFinite(t *testing.T) {
	tests := []struct {
		name string
		p    pathcodec.Point
	}{
		{"nan", pt(math.NaN(), 1)},
		{"+inf", pt(0, math.Inf(1))},
		{"-inf", pt(math.Inf(-1), 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := pathcodec.AppendMove(nil, pt(1, 2))
			data = pathcodec.AppendLine(data, test.p)

			_, err := svgpath.Format(data)
			require.True(t, errors.Is(err, svgpath.ErrNonFinite), "got %v", err)
		})
	}

	var w svgpath.Writer
	w.MoveTo(pt(math.NaN(), 0))
	w.LineTo(pt(1, 1))
	require.True(t, errors.Is(w.Err(), svgpath.ErrNonFinite))
	require.Contains(t, w.Err().Error(), "element 0")

	w.Reset()
	require.NoError(t, w.Err())
}

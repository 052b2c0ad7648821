package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chaisql/pathcodec"
	"github.com/chaisql/pathcodec/cmd/pathcodec/commands"
	"github.com/chaisql/pathcodec/cmd/pathcodec/pathutil"
	"github.com/chaisql/pathcodec/internal/testutil"
	"github.com/chaisql/pathcodec/raster"
	"github.com/chaisql/pathcodec/store"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// run executes the app with the given stdin and arguments and returns its stdout.
func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := commands.NewApp()
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	app.Reader = stdin
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(context.Background(), append([]string{"pathcodec"}, args...))
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	encoded, err := run(t, strings.NewReader("M0 0 l10 0 v10 z"), "encode")
	require.NoError(t, err)

	p, err := pathcodec.DecodePath([]byte(encoded))
	require.NoError(t, err)
	require.Equal(t, "M0 0 L10 0 L10 10 Z", p.String())

	tests := []struct {
		to   string
		want string
	}{
		{"svg", "M0 0L10 0L10 10Z\n"},
		{"text", "M0 0\nL10 0\nL10 10\nZ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			got, err := run(t, strings.NewReader(encoded), "decode", "--to", tt.to)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeJSONToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.path")
	require.NoError(t, os.WriteFile(in, []byte(`[{"op":"M","points":[[1,2]]},{"op":"Z"}]`), 0o644))

	stdout, err := run(t, nil, "encode", "--from", "json", "-o", out, in)
	require.NoError(t, err)
	require.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, pathcodec.Path{pathcodec.MoveTo(pathcodec.Point{X: 1, Y: 2}), pathcodec.ClosePath()}.Encode(nil), got)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := run(t, bytes.NewReader([]byte{'M', 0, 0}), "decode")
	testutil.RequireFormatError(t, err, 0)

	_, err = run(t, bytes.NewReader(nil), "decode", "--to", "yaml")
	require.True(t, errors.Is(err, pathutil.ErrUnknownFormat))
}

func TestDumpAndStats(t *testing.T) {
	data := testutil.SamplePath().Encode(nil)

	out, err := run(t, bytes.NewReader(data), "dump")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(testutil.SamplePath()))
	require.True(t, strings.HasPrefix(out, "00000000  move"))

	out, err = run(t, bytes.NewReader(data), "stats")
	require.NoError(t, err)
	require.Contains(t, out, "records: 7\n")
	require.Contains(t, out, "subpaths: 2\n")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.path")
	bad := filepath.Join(dir, "bad.path")
	require.NoError(t, os.WriteFile(good, testutil.SamplePath().Encode(nil), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("Z?"), 0o644))

	out, err := run(t, nil, "check", good)
	require.NoError(t, err)
	require.Equal(t, good+": ok\n", out)

	out, err = run(t, nil, "check", good, bad)
	require.True(t, errors.Is(err, pathutil.ErrInvalidFiles))
	require.Contains(t, out, bad+": invalid path format: unknown tag '?' at offset 1\n")

	_, err = run(t, nil, "check")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	data := testutil.SamplePath()[:5].Encode(nil)

	_, err := run(t, bytes.NewReader(data), "render", "--width", "20", "--height", "20", "-o", out)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestRenderFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
		args []string
		is   error
	}{
		{"invalid stream", []byte{'Q', 1}, nil, pathcodec.ErrInvalidFormat},
		{"out of range", pathcodec.Path{
			pathcodec.MoveTo(pathcodec.Point{}),
			pathcodec.LineTo(pathcodec.Point{X: 1e12, Y: 5}),
			pathcodec.ClosePath(),
		}.Encode(nil), []string{"--no-fit"}, raster.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".png")

			args := append([]string{"render", "-o", out}, tt.args...)
			_, err := run(t, bytes.NewReader(tt.data), args...)
			require.True(t, errors.Is(err, tt.is))

			_, err = os.Stat(out)
			require.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestRenderCreateError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out.png")

	_, err := run(t, bytes.NewReader(testutil.SamplePath()[:5].Encode(nil)), "render", "-o", out)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "paths.db")
	data := testutil.SamplePath().Encode(nil)

	_, err := run(t, bytes.NewReader(data), "store", "--db", db, "put", "sample")
	require.NoError(t, err)
	_, err = run(t, bytes.NewReader(data[:20]), "store", "--db", db, "put", "broken")
	testutil.RequireFormatError(t, err, 17)

	out, err := run(t, nil, "store", "--db", db, "get", "sample")
	require.NoError(t, err)
	require.Equal(t, data, []byte(out))

	out, err = run(t, nil, "store", "--db", db, "ls")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	require.True(t, strings.HasSuffix(lines[0], "\tsample"))

	_, err = run(t, nil, "store", "--db", db, "mv", "sample", "renamed")
	require.NoError(t, err)

	_, err = run(t, nil, "store", "--db", db, "rm", "renamed", "missing")
	require.True(t, errors.Is(err, store.ErrPathNotFound))

	_, err = run(t, nil, "store", "--db", db, "rm", "renamed")
	require.NoError(t, err)

	out, err = run(t, nil, "store", "--db", db, "ls")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestStoreEnv(t *testing.T) {
	t.Setenv("PATHCODEC_DB", ":memory:")

	_, err := run(t, nil, "store", "get", "missing")
	require.True(t, errors.Is(err, store.ErrPathNotFound))
}

func TestLogLevel(t *testing.T) {
	_, err := run(t, nil, "--log-level", "loud", "version")
	require.Error(t, err)

	out, err := run(t, nil, "--log-level", "debug", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "pathcodec "))
}

package pathutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/chaisql/pathcodec"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidFiles is returned by Check when at least one file is not a well-formed stream.
var ErrInvalidFiles = errors.New("invalid files")

// CheckResult is the outcome of validating one file.
type CheckResult struct {
	Name string
	Err  error
}

// Check validates the named files concurrently and writes one line per file,
// in the order of names. It returns ErrInvalidFiles if any file is malformed
// and stops early if ctx is canceled.
func Check(ctx context.Context, w io.Writer, names []string) error {
	results := make([]CheckResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "cannot read %q", name)
			}

			results[i] = CheckResult{Name: name, Err: pathcodec.Validate(data)}
			slog.Debug("checked file", "name", name, "size", len(data), "ok", results[i].Err == nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var invalid int
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			invalid++
			status = r.Err.Error()
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Name, status); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return errors.Wrapf(ErrInvalidFiles, "%d of %d", invalid, len(names))
	}
	return nil
}

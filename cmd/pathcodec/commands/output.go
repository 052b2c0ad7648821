package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// output is the destination selected by the output flag.
type output struct {
	io.Writer
	file *os.File
}

// createOutput creates the file named by the output flag,
// or returns the standard output if the flag is empty or "-".
func createOutput(cmd *cli.Command) (*output, error) {
	f := cmd.String("output")
	if f == "" || f == "-" {
		return &output{Writer: cmd.Root().Writer}, nil
	}

	file, err := os.Create(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %q", f)
	}

	return &output{Writer: file, file: file}, nil
}

// close closes the output file. If failed is true, the file is removed
// so that no partial output is left behind.
func (o *output) close(failed bool) error {
	if o.file == nil {
		return nil
	}

	err := o.file.Close()
	if failed {
		return errors.Wrapf(os.Remove(o.file.Name()), "cannot remove %q", o.file.Name())
	}
	return errors.Wrapf(err, "cannot close %q", o.file.Name())
}

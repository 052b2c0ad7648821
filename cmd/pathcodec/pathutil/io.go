package pathutil

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// ReadInput reads the whole content of the named file,
// or of stdin if name is empty or "-".
func ReadInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "cannot read standard input")
	}

	data, err := os.ReadFile(name)
	return data, errors.Wrapf(err, "cannot read %q", name)
}

// WriteOutput writes data to the named file,
// or to stdout if name is empty or "-".
func WriteOutput(stdout io.Writer, name string, data []byte) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(data)
		return err
	}

	return errors.Wrapf(os.WriteFile(name, data, 0o644), "cannot write %q", name)
}

package pathutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/chaisql/pathcodec"
	"github.com/chaisql/pathcodec/jsonpath"
	"github.com/chaisql/pathcodec/svgpath"
	"github.com/cockroachdb/errors"
)

// Text formats understood by Encode and Decode.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownFormat is returned for an unsupported text format.
var ErrUnknownFormat = errors.New("unknown format")

// Encode converts a textual path description into a binary stream.
func Encode(src []byte, from string) ([]byte, error) {
	switch from {
	case FormatSVG:
		return svgpath.Encode(nil, strings.TrimSpace(string(src)))
	case FormatJSON:
		return jsonpath.Encode(nil, src)
	}

	return nil, unknownFormat(from, FormatSVG, FormatJSON)
}

// Decode writes a binary stream to w in the given text format.
func Decode(w io.Writer, data []byte, to string) error {
	var out []byte
	var err error

	switch to {
	case FormatSVG:
		var s string
		s, err = svgpath.Format(data)
		out = []byte(s + "\n")
	case FormatJSON:
		out, err = jsonpath.Marshal(data)
		out = append(out, '\n')
	case FormatText:
		var p pathcodec.Path
		p, err = pathcodec.DecodePath(data)
		var sb strings.Builder
		for _, e := range p {
			sb.WriteString(pathcodec.Path{e}.String())
			sb.WriteByte('\n')
		}
		out = []byte(sb.String())
	default:
		return unknownFormat(to, FormatSVG, FormatJSON, FormatText)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

func unknownFormat(name string, supported ...string) error {
	err := errors.Wrapf(ErrUnknownFormat, "%q", name)
	return errors.WithHintf(withSuggestions(err, name, supported), "supported formats: %s", strings.Join(supported, ", "))
}

// Dump writes one line per record of data, prefixed by its offset.
// If the stream is malformed, the records preceding the error are written
// followed by a line describing the error, which is also returned.
func Dump(w io.Writer, data []byte) error {
	s := pathcodec.NewScanner(data)
	for s.Scan() {
		e := s.Element()
		if _, err := fmt.Fprintf(w, "%08d  %-15s  %s\n", s.Offset(), e.Kind, pathcodec.Path{e}); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		offset, _ := pathcodec.ErrorOffset(err)
		_, _ = fmt.Fprintf(w, "%08d  error: %v\n", offset, err)
		return err
	}

	return nil
}

package pathcodec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidFormat is returned when decoding a malformed stream.
// Use errors.As with a *FormatError to get the offset at which decoding failed.
var ErrInvalidFormat = errors.New("invalid path format")

// FormatReason describes why a record could not be decoded.
type FormatReason int

const (
	// UnknownTag means the byte where a tag was expected is not a known tag.
	UnknownTag FormatReason = iota + 1
	// TruncatedRecord means the stream ends before the record payload is complete.
	TruncatedRecord
)

func (r FormatReason) String() string {
	switch r {
	case UnknownTag:
		return "unknown tag"
	case TruncatedRecord:
		return "truncated record"
	}
	return "invalid format"
}

// FormatError represents an error that occurred while decoding a stream.
type FormatError struct {
	// Offset of the tag byte of the record that could not be decoded.
	Offset int
	// Tag is the byte found at Offset.
	Tag    byte
	Reason FormatReason
}

func newFormatError(offset int, tag byte, reason FormatReason) error {
	return errors.WithStack(&FormatError{Offset: offset, Tag: tag, Reason: reason})
}

// Error returns the string representation of the error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s %q at offset %d", ErrInvalidFormat, e.Reason, e.Tag, e.Offset)
}

// Is makes errors.Is(err, ErrInvalidFormat) true for any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// IsFormatError reports whether err was caused by a malformed stream.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// ErrorOffset returns the offset carried by a FormatError in err's chain.
// The second value is false if err is not a format error.
func ErrorOffset(err error) (int, bool) {
	var fe *FormatError
	if !errors.As(err, &fe) {
		return 0, false
	}
	return fe.Offset, true
}

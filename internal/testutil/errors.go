package testutil

import (
	"testing"

	"github.com/chaisql/pathcodec"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// RequireFormatError fails the test if err is not a format error
// reported at the given offset.
func RequireFormatError(t testing.TB, err error, offset int) {
	t.Helper()

	require.Error(t, err)
	require.Truef(t, errors.Is(err, pathcodec.ErrInvalidFormat), "expected invalid format error, got %+v", err)

	got, ok := pathcodec.ErrorOffset(err)
	require.True(t, ok)
	require.Equal(t, offset, got)
}

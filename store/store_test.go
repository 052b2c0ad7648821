package store_test

import (
	"testing"

	"github.com/chaisql/pathcodec"
	"github.com/chaisql/pathcodec/internal/testutil"
	"github.com/chaisql/pathcodec/store"
	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
	"github.com/stretchr/testify/require"
)

const fixedMilli = 1700000000123

func openStore(t testing.TB) *store.Store {
	st, err := store.Open("", &store.Options{
		Now: func() carbon.Carbon { return carbon.CreateFromTimestampMilli(fixedMilli) },
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})
	return st
}

func TestPutGet(t *testing.T) {
	st := openStore(t)
	data := testutil.SamplePath().Encode(nil)

	require.NoError(t, st.Put("shapes/sample", data))

	got, err := st.Get("shapes/sample")
	require.NoError(t, err)
	require.Equal(t, data, got)

	var p pathcodec.Path
	require.NoError(t, st.Decode("shapes/sample", &p))
	testutil.RequirePathEqual(t, testutil.SamplePath(), p)

	e, err := st.Stat("shapes/sample")
	require.NoError(t, err)
	require.Equal(t, "shapes/sample", e.Name)
	require.Equal(t, len(data), e.Size)
	require.Equal(t, int64(fixedMilli), e.Updated.TimestampMilli())
}

func TestPutEmptyPath(t *testing.T) {
	st := openStore(t)

	require.NoError(t, st.Put("empty", nil))
	got, err := st.Get("empty")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPutInvalid(t *testing.T) {
	st := openStore(t)

	err := st.Put("", nil)
	require.True(t, errors.Is(err, store.ErrInvalidName))

	err = st.Put("broken", []byte{'C', 1, 2, 3})
	require.True(t, errors.Is(err, pathcodec.ErrInvalidFormat))
	offset, ok := pathcodec.ErrorOffset(err)
	require.True(t, ok)
	require.Zero(t, offset)

	_, err = st.Get("broken")
	require.True(t, errors.Is(err, store.ErrPathNotFound))
}

func TestDelete(t *testing.T) {
	st := openStore(t)

	require.NoError(t, st.PutPath("a", testutil.SamplePath()))
	require.NoError(t, st.Delete("a"))

	_, err := st.Get("a")
	require.True(t, errors.Is(err, store.ErrPathNotFound))

	err = st.Delete("a")
	require.True(t, errors.Is(err, store.ErrPathNotFound))
}

func TestDeleteAll(t *testing.T) {
	st := openStore(t)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, st.PutPath(name, testutil.SamplePath()))
	}

	err := st.DeleteAll("a", "missing", "b")
	require.True(t, errors.Is(err, store.ErrPathNotFound))
	entries, err := st.List("")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.NoError(t, st.DeleteAll("a", "b"))
	entries, err = st.List("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "c", entries[0].Name)
}

func TestRename(t *testing.T) {
	st := openStore(t)
	data := testutil.SamplePath().Encode(nil)

	require.NoError(t, st.Put("old", data))
	require.NoError(t, st.Rename("old", "new"))

	_, err := st.Get("old")
	require.True(t, errors.Is(err, store.ErrPathNotFound))
	got, err := st.Get("new")
	require.NoError(t, err)
	require.Equal(t, data, got)

	e, err := st.Stat("new")
	require.NoError(t, err)
	require.Equal(t, int64(fixedMilli), e.Updated.TimestampMilli())

	err = st.Rename("old", "other")
	require.True(t, errors.Is(err, store.ErrPathNotFound))
	err = st.Rename("new", "")
	require.True(t, errors.Is(err, store.ErrInvalidName))
}

func TestList(t *testing.T) {
	st := openStore(t)

	sq := pathcodec.Path{
		pathcodec.MoveTo(pathcodec.Point{}),
		pathcodec.LineTo(pathcodec.Point{X: 1}),
		pathcodec.ClosePath(),
	}
	for _, name := range []string{"shapes/square", "glyphs/a", "shapes/circle"} {
		require.NoError(t, st.PutPath(name, sq))
	}

	entries, err := st.List("shapes/")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "shapes/circle", entries[0].Name)
	require.Equal(t, "shapes/square", entries[1].Name)
	require.Equal(t, 35, entries[0].Size)

	entries, err = st.List("")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	entries, err = st.List("nothing")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEntryString(t *testing.T) {
	e := store.Entry{
		Name:    "a",
		Size:    17,
		Updated: carbon.CreateFromTimestampMilli(0, carbon.UTC),
	}
	require.Equal(t, "1970-01-01 00:00:00\t17\ta", e.String())
}

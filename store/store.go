// Package store keeps encoded paths by name in a Pebble database.
//
// Every stream is validated before being stored, so Get only ever returns
// well-formed streams.
package store

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/chaisql/pathcodec"
	"github.com/chaisql/pathcodec/internal/kv"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/golang-module/carbon/v2"
)

const pathsPrefix = 'p'

// size of the timestamp header of each value
const headerSize = 8

var (
	// ErrPathNotFound is returned when no path is stored under the requested name.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidName is returned when a path name is empty.
	ErrInvalidName = errors.New("invalid path name")
)

// Options configures a Store.
type Options struct {
	// Logger receives Pebble diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Now returns the time recorded when a path is stored. Defaults to carbon.Now.
	Now func() carbon.Carbon
	// Pebble options. The Logger field is overwritten.
	Pebble *pebble.Options
}

// Entry describes a stored path.
type Entry struct {
	Name string
	// Size of the encoded stream in bytes.
	Size    int
	Updated carbon.Carbon
}

// Store is a named path collection.
// A Store is safe for concurrent use.
type Store struct {
	ng    *kv.Engine
	paths *kv.Store
	now   func() carbon.Carbon
}

// Open opens or creates the store located in dir.
// If dir is empty, the store is kept in memory.
func Open(dir string, opts *Options) (*Store, error) {
	if opts == nil {
		opts = &Options{}
	}

	popts := opts.Pebble
	if popts == nil {
		popts = &pebble.Options{}
	}
	popts.Logger = &kv.SlogLogger{Logger: opts.Logger}

	ng, err := kv.NewEngine(dir, popts)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = func() carbon.Carbon { return carbon.Now() }
	}

	return &Store{
		ng:    ng,
		paths: ng.Store([]byte{pathsPrefix}),
		now:   now,
	}, nil
}

// Put stores data under name, replacing any previous path with that name.
// data must be a well-formed stream.
func (s *Store) Put(name string, data []byte) error {
	if name == "" {
		return errors.WithStack(ErrInvalidName)
	}

	if err := pathcodec.Validate(data); err != nil {
		return errors.Wrapf(err, "cannot store path %q", name)
	}

	v := make([]byte, 0, headerSize+len(data))
	v = binary.BigEndian.AppendUint64(v, uint64(s.now().TimestampMilli()))
	v = append(v, data...)

	return s.paths.Put([]byte(name), v)
}

// PutPath encodes p and stores it under name.
func (s *Store) PutPath(name string, p pathcodec.Path) error {
	return s.Put(name, p.Encode(nil))
}

// Get returns the stream stored under name.
func (s *Store) Get(name string) ([]byte, error) {
	v, err := s.get(name)
	if err != nil {
		return nil, err
	}
	return v[headerSize:], nil
}

// Decode decodes the stream stored under name into b.
func (s *Store) Decode(name string, b pathcodec.Builder) error {
	data, err := s.Get(name)
	if err != nil {
		return err
	}
	return pathcodec.Decode(data, b)
}

// Stat returns the entry of the path stored under name.
func (s *Store) Stat(name string) (*Entry, error) {
	v, err := s.get(name)
	if err != nil {
		return nil, err
	}
	e := makeEntry(name, v)
	return &e, nil
}

func (s *Store) get(name string) ([]byte, error) {
	v, err := s.paths.Get([]byte(name))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, errors.Wrapf(ErrPathNotFound, "%q", name)
		}
		return nil, err
	}
	if len(v) < headerSize {
		return nil, errors.Newf("corrupted entry %q", name)
	}
	return v, nil
}

// Delete removes the path stored under name.
func (s *Store) Delete(name string) error {
	err := s.paths.Delete([]byte(name))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return errors.Wrapf(ErrPathNotFound, "%q", name)
	}
	return err
}

// DeleteAll removes the paths stored under names atomically.
// If any of them is missing, nothing is removed.
func (s *Store) DeleteAll(names ...string) error {
	b := s.paths.NewBatch()
	defer b.Close()

	for _, name := range names {
		err := b.Delete([]byte(name))
		if errors.Is(err, kv.ErrKeyNotFound) {
			return errors.Wrapf(ErrPathNotFound, "%q", name)
		}
		if err != nil {
			return err
		}
	}

	return b.Commit()
}

// Rename moves the path stored under oldName to newName atomically,
// replacing any path stored under newName. The update time is preserved.
func (s *Store) Rename(oldName, newName string) error {
	if newName == "" {
		return errors.WithStack(ErrInvalidName)
	}

	b := s.paths.NewBatch()
	defer b.Close()

	v, err := b.Get([]byte(oldName))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return errors.Wrapf(ErrPathNotFound, "%q", oldName)
	}
	if err != nil {
		return err
	}

	if err := b.Delete([]byte(oldName)); err != nil {
		return err
	}
	if err := b.Put([]byte(newName), v); err != nil {
		return err
	}

	return b.Commit()
}

// List returns the entries whose name starts with prefix, sorted by name.
func (s *Store) List(prefix string) ([]Entry, error) {
	var entries []Entry
	err := s.paths.Iterate([]byte(prefix), func(k, v []byte) error {
		if len(v) < headerSize {
			return errors.Newf("corrupted entry %q", k)
		}
		entries = append(entries, makeEntry(string(k), v))
		return nil
	})
	return entries, err
}

func makeEntry(name string, v []byte) Entry {
	ms := int64(binary.BigEndian.Uint64(v))
	return Entry{
		Name:    name,
		Size:    len(v) - headerSize,
		Updated: carbon.CreateFromTimestampMilli(ms),
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.ng.Close()
}

// String returns a one line description of the entry.
func (e Entry) String() string {
	return fmt.Sprintf("%s\t%d\t%s", e.Updated.ToDateTimeString(), e.Size, e.Name)
}

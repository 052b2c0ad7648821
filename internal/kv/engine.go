// Package kv implements the Pebble key-value layer of the path store.
package kv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

const (
	separator byte = 0x1F
)

// Engine represents a Pebble kv.
type Engine struct {
	DB   *pebble.DB
	opts *pebble.Options
}

// NewEngine creates a Pebble kv engine. It takes the same argument as Pebble's Open function.
// If path is empty, the database is kept in memory.
func NewEngine(path string, opts *pebble.Options) (*Engine, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	if path == "" && opts.FS == nil {
		opts.FS = vfs.NewMem()
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open pebble database %q", path)
	}

	return &Engine{
		DB:   db,
		opts: opts,
	}, nil
}

// InMemory reports whether the engine stores its data in memory.
func (e *Engine) InMemory() bool {
	_, ok := e.opts.FS.(*vfs.MemFS)
	return ok
}

// Store returns the store holding every key under the given prefix.
func (e *Engine) Store(prefix []byte) *Store {
	return &Store{ng: e, Prefix: prefix}
}

// Close the engine and underlying Pebble database.
func (e *Engine) Close() error {
	return e.DB.Close()
}

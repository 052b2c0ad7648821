package kv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// Batch groups writes to a store. Nothing is visible to other readers
// until Commit, which applies every write atomically.
// Reads through the batch see its own pending writes.
type Batch struct {
	Store  *Store
	Batch  *pebble.Batch
	closed bool
}

// NewBatch creates a batch of writes to s.
func (s *Store) NewBatch() *Batch {
	return &Batch{
		Store: s,
		Batch: s.ng.DB.NewIndexedBatch(),
	}
}

// Get returns a value associated with the given key. If not found, returns ErrKeyNotFound.
func (b *Batch) Get(k []byte) ([]byte, error) {
	key := BuildKey(b.Store.Prefix, k)
	v, err := get(b.Batch, key)
	bufferPool.Put(&key)
	return v, err
}

// Exists returns whether a key exists and is visible by the batch.
func (b *Batch) Exists(k []byte) (bool, error) {
	key := BuildKey(b.Store.Prefix, k)
	ok, err := exists(b.Batch, key)
	bufferPool.Put(&key)
	return ok, err
}

// Put stores a key value pair. If it already exists, it overrides it.
func (b *Batch) Put(k, v []byte) error {
	if len(k) == 0 {
		return errors.New("cannot store empty key")
	}

	key := BuildKey(b.Store.Prefix, k)
	err := b.Batch.Set(key, v, nil)
	bufferPool.Put(&key)
	return err
}

// Delete a record by key. If not found, returns ErrKeyNotFound.
func (b *Batch) Delete(k []byte) error {
	ok, err := b.Exists(k)
	if err != nil {
		return err
	}
	if !ok {
		return errors.WithStack(ErrKeyNotFound)
	}

	key := BuildKey(b.Store.Prefix, k)
	err = b.Batch.Delete(key, nil)
	bufferPool.Put(&key)
	return err
}

// Commit applies the writes and closes the batch.
func (b *Batch) Commit() error {
	if b.closed {
		return errors.New("already closed")
	}

	err := b.Batch.Commit(pebble.Sync)
	if err != nil {
		return err
	}

	return b.Close()
}

// Close discards the pending writes. It is a no-op after Commit.
func (b *Batch) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	return b.Batch.Close()
}

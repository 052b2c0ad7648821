package kv

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return &[]byte{}
	},
}

// Store is a namespace of keys sharing the same prefix.
type Store struct {
	ng     *Engine
	Prefix []byte
}

// build a long key for each key of a store
// in the form: storePrefix + <sep> + 0 + key.
// the 0 is used to separate the actual key
// from the rest of the prefix and to ensure
// we can quickly access the latest key of the store
// by replacing 0 by anything bigger.
func BuildKey(prefix, k []byte) []byte {
	buf := bufferPool.Get().(*[]byte)
	if cap(*buf) < len(prefix)+len(k)+2 {
		*buf = make([]byte, 0, len(prefix)+len(k)+2)
	}
	key := (*buf)[:0]
	key = append(key, prefix...)
	key = append(key, separator)
	key = append(key, 0)
	key = append(key, k...)
	return key
}

func TrimPrefix(k []byte, prefix []byte) []byte {
	return k[len(prefix)+2:]
}

// Put stores a key value pair. If it already exists, it overrides it.
func (s *Store) Put(k, v []byte) error {
	if len(k) == 0 {
		return errors.New("cannot store empty key")
	}

	key := BuildKey(s.Prefix, k)
	err := s.ng.DB.Set(key, v, pebble.Sync)
	bufferPool.Put(&key)
	return err
}

// Get returns a value associated with the given key. If not found, returns ErrKeyNotFound.
func (s *Store) Get(k []byte) ([]byte, error) {
	key := BuildKey(s.Prefix, k)
	v, err := get(s.ng.DB, key)
	bufferPool.Put(&key)
	return v, err
}

// Exists returns whether a key exists.
func (s *Store) Exists(k []byte) (bool, error) {
	key := BuildKey(s.Prefix, k)
	ok, err := exists(s.ng.DB, key)
	bufferPool.Put(&key)
	return ok, err
}

// Delete a record by key. If not found, returns ErrKeyNotFound.
func (s *Store) Delete(k []byte) error {
	ok, err := s.Exists(k)
	if err != nil {
		return err
	}
	if !ok {
		return errors.WithStack(ErrKeyNotFound)
	}

	key := BuildKey(s.Prefix, k)
	err = s.ng.DB.Delete(key, pebble.Sync)
	bufferPool.Put(&key)
	return err
}

// Iterate calls fn for every key of the store starting with pivot, in key order.
// Keys are passed without the store prefix. Neither k nor v may be retained
// after fn returns. If fn returns an error, iteration stops and the error is returned.
func (s *Store) Iterate(pivot []byte, fn func(k, v []byte) error) error {
	lower := append([]byte(nil), BuildKey(s.Prefix, pivot)...)
	upper := keyUpperBound(lower)

	it, err := s.ng.DB.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return err
	}
	defer func(it *pebble.Iterator) {
		_ = it.Close()
	}(it)

	for it.First(); it.Valid(); it.Next() {
		if err := fn(TrimPrefix(it.Key(), s.Prefix), it.Value()); err != nil {
			return err
		}
	}

	return it.Error()
}

// keyUpperBound returns the smallest key greater than every key starting with b,
// or nil if there is none.
func keyUpperBound(b []byte) []byte {
	end := make([]byte, len(b))
	copy(end, b)
	for i := len(end) - 1; i >= 0; i-- {
		end[i] = end[i] + 1
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

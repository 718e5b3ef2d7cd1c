// Package store provides the in-memory key-value backing used by the
// issuer ledger, implementing the scrip.KVStore contract on top of a btree
// so that prefix iteration comes out in key order.
package store

import (
	"bytes"

	"github.com/google/btree"

	"github.com/scripnet/scrip"
)

// degree mirrors what the backing btree library recommends for small
// working sets.
const degree = 2

type item struct {
	key   []byte
	value []byte
}

func (i item) Less(than btree.Item) bool {
	return bytes.Compare(i.key, than.(item).key) < 0
}

// MemStore is a btree backed KVStore. It is not safe for concurrent use,
// callers serialize access (the ledger holds one lock per instance).
type MemStore struct {
	bt *btree.BTree
}

var _ scrip.KVStore = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{bt: btree.New(degree)}
}

// Get returns the stored value, or nil if the key is missing.
func (s *MemStore) Get(key []byte) ([]byte, error) {
	got := s.bt.Get(item{key: key})
	if got == nil {
		return nil, nil
	}
	v := got.(item).value
	return append([]byte(nil), v...), nil
}

// Has returns true if the key is present.
func (s *MemStore) Has(key []byte) (bool, error) {
	return s.bt.Has(item{key: key}), nil
}

// Set stores a copy of key and value.
func (s *MemStore) Set(key, value []byte) error {
	s.bt.ReplaceOrInsert(item{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
	return nil
}

// Delete removes the key. Deleting a missing key is a no-op.
func (s *MemStore) Delete(key []byte) error {
	s.bt.Delete(item{key: key})
	return nil
}

// Iterator returns a snapshot iterator over start <= key < end in
// ascending order. Writes made after the call do not show up.
func (s *MemStore) Iterator(start, end []byte) (scrip.Iterator, error) {
	var items []item
	insert := func(i btree.Item) bool {
		it := i.(item)
		items = append(items, item{
			key:   append([]byte(nil), it.key...),
			value: append([]byte(nil), it.value...),
		})
		return true
	}

	if start == nil && end == nil {
		s.bt.Ascend(insert)
	} else if start == nil {
		s.bt.AscendLessThan(item{key: end}, insert)
	} else if end == nil {
		s.bt.AscendGreaterOrEqual(item{key: start}, insert)
	} else {
		s.bt.AscendRange(item{key: start}, item{key: end}, insert)
	}

	return &sliceIterator{items: items}, nil
}

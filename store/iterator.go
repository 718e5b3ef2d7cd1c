package store

import (
	"github.com/scripnet/scrip"
)

// sliceIterator walks an already collected snapshot of items.
type sliceIterator struct {
	items []item
	pos   int
}

var _ scrip.Iterator = (*sliceIterator)(nil)

// Valid returns true iff the iterator can be read.
func (i *sliceIterator) Valid() bool {
	return i.pos < len(i.items)
}

// Next moves the iterator to the next key. Panics when advanced past the
// end, as defined by the scrip.Iterator contract.
func (i *sliceIterator) Next() error {
	if !i.Valid() {
		panic("iterator advanced past the end")
	}
	i.pos++
	return nil
}

// Key returns the key of the cursor.
func (i *sliceIterator) Key() []byte {
	return i.items[i.pos].key
}

// Value returns the value of the cursor.
func (i *sliceIterator) Value() []byte {
	return i.items[i.pos].value
}

// Close releases the iterator.
func (i *sliceIterator) Close() {
	i.items = nil
	i.pos = 0
}

// PrefixRange turns a prefix into a (start, end) range usable with
// Iterator to walk all keys with that prefix.
//
// In case of the prefix being all 0xff bytes the end is unbounded.
func PrefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}

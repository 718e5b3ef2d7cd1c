package scrip

// ReadOnlyKVStore is the read side of the key-value contract the issuer
// ledger is built against. Get returns nil if the key is missing.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	// Iterator returns entries with start <= key < end in ascending key
	// order. A nil start or end means unbounded on that side.
	Iterator(start, end []byte) (Iterator, error)
}

// KVStore extends the read contract with writes.
type KVStore interface {
	ReadOnlyKVStore
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Iterator walks a key range in ascending order. Key and Value must not be
// called when Valid is false.
type Iterator interface {
	Valid() bool
	Next() error
	Key() []byte
	Value() []byte
	Close()
}

package issuer

import (
	"encoding/binary"
	"fmt"

	"github.com/scripnet/scrip"
)

// sequence maintains a counter in the ledger store and generates the
// series of note ids. Each id is greater than the last, both numerically
// and in byte order.
type sequence struct {
	id []byte
}

// newSequence returns a sequence counter stored under "_s.<name>".
func newSequence(name string) sequence {
	return sequence{id: []byte("_s." + name)}
}

// nextInt increments the sequence and returns its new state.
func (s sequence) nextInt(db scrip.KVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	val := decodeSequence(raw) + 1
	return val, db.Set(s.id, encodeSequence(val))
}

// nextID increments the sequence and renders it as a 16 character hex
// note id.
func (s sequence) nextID(db scrip.KVStore) (string, error) {
	val, err := s.nextInt(db)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", val), nil
}

func decodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(bz))
}

func encodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}

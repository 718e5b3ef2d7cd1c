package issuer

import (
	"encoding/json"
	"time"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/errors"
)

// Bucket prefixes inside the ledger's key-value store. Each prefix holds
// one record type only.
const (
	walletPrefix = "wallet:"
	notePrefix   = "note:"
	spentPrefix  = "spent:"
)

func walletKey(pub scrip.PubKey) []byte {
	return append([]byte(walletPrefix), pub...)
}

func noteKey(id string) []byte {
	return []byte(notePrefix + id)
}

func spentKey(id string) []byte {
	return []byte(spentPrefix + id)
}

// walletRecord marks a public key as registered.
type walletRecord struct {
	PubKey       scrip.PubKey `json:"pubKey"`
	RegisteredAt time.Time    `json:"registeredAt"`
}

// issuanceRecord is the authoritative copy of a note's mint fields plus
// the last owner the ledger knows of. The mint fields here, not the ones a
// holder submits, are the source of truth at reconciliation.
type issuanceRecord struct {
	NoteID    string       `json:"noteId"`
	Value     int64        `json:"value"`
	CreatedAt time.Time    `json:"createdAt"`
	Expiry    time.Time    `json:"expiry"`
	IssuedTo  scrip.PubKey `json:"issuedTo"`
	Owner     scrip.PubKey `json:"owner"`
}

func (r *issuanceRecord) marshal() ([]byte, error) {
	bz, err := json.Marshal(r)
	return bz, errors.Wrap(err, "marshal issuance record")
}

func unmarshalIssuance(raw []byte) (*issuanceRecord, error) {
	var r issuanceRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, errors.Wrap(errors.ErrState, "corrupted issuance record")
	}
	return &r, nil
}

package wallet

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/note"
)

var noteSeq int

// mintNote builds an issuer-signed note with an empty chain and a unique id.
func mintNote(t *testing.T, issuer crypto.Signer, owner scrip.PubKey, value int64, now time.Time) *note.Note {
	t.Helper()

	noteSeq++
	id := fmt.Sprintf("%016x", noteSeq)
	createdAt := now.UTC().Truncate(time.Second)
	expiry := createdAt.Add(scrip.NoteLifetime)
	sig, err := issuer.Sign(note.MintSignBytes(id, value, createdAt, expiry, owner))
	require.NoError(t, err)

	return &note.Note{
		ID:              id,
		Value:           value,
		IssuerSignature: sig,
		CreatedAt:       createdAt,
		Expiry:          expiry,
		IssuedTo:        owner,
		TransferChain:   []note.Hop{},
	}
}

// hop signs and appends a transfer without any policy checks.
func hop(t *testing.T, n *note.Note, from crypto.Signer, to scrip.PubKey) *note.Note {
	t.Helper()

	sig, err := from.Sign(note.TransferSignBytes(n.ID, to))
	require.NoError(t, err)
	return n.WithHop(note.Hop{From: from.PublicKey(), To: to, Signature: sig})
}

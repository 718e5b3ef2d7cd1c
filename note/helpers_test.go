package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
)

// mintNote builds a properly issuer-signed note with an empty chain.
func mintNote(t *testing.T, issuer crypto.Signer, owner scrip.PubKey, value int64, now time.Time) *Note {
	t.Helper()

	createdAt := now.UTC().Truncate(time.Second)
	expiry := createdAt.Add(scrip.NoteLifetime)
	sig, err := issuer.Sign(MintSignBytes("0000000000000001", value, createdAt, expiry, owner))
	require.NoError(t, err)

	return &Note{
		ID:              "0000000000000001",
		Value:           value,
		IssuerSignature: sig,
		CreatedAt:       createdAt,
		Expiry:          expiry,
		IssuedTo:        owner,
		TransferChain:   []Hop{},
	}
}

// appendHop signs and appends a hop from the given key to the recipient,
// bypassing all policy checks. Tests use it to build arbitrary chains.
func appendHop(t *testing.T, n *Note, from crypto.Signer, to scrip.PubKey) *Note {
	t.Helper()

	sig, err := from.Sign(TransferSignBytes(n.ID, to))
	require.NoError(t, err)
	return n.WithHop(Hop{From: from.PublicKey(), To: to, Signature: sig})
}

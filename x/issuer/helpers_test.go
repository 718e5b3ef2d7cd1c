package issuer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/note"
	"github.com/scripnet/scrip/scriptest"
	"github.com/scripnet/scrip/store"
)

// testLedger returns a fresh ledger over an in-memory store, with a
// manual clock and the issuer keypair used to sign its notes.
func testLedger(t *testing.T) (*Ledger, *scriptest.Clock, crypto.Signer) {
	t.Helper()

	clock := scriptest.NewClock(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))
	key := scriptest.KeyFromSeed("ledger-signing-key")
	return NewLedgerWithClock(store.NewMemStore(), key, clock.Now), clock, key
}

// hop signs and appends a transfer without any policy checks.
func hop(t *testing.T, n *note.Note, from crypto.Signer, to scrip.PubKey) *note.Note {
	t.Helper()

	sig, err := from.Sign(note.TransferSignBytes(n.ID, to))
	require.NoError(t, err)
	return n.WithHop(note.Hop{From: from.PublicKey(), To: to, Signature: sig})
}

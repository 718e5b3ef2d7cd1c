package issuer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/errors"
	"github.com/scripnet/scrip/note"
	"github.com/scripnet/scrip/scriptest"
)

func TestMint(t *testing.T) {
	ledger, clock, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")

	require.NoError(t, ledger.Register(alice.PublicKey()))

	n, err := ledger.Mint(alice.PublicKey(), 50)
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, int64(50), n.Value)
	assert.True(t, n.IssuedTo.Equals(alice.PublicKey()))
	assert.Empty(t, n.TransferChain)
	assert.True(t, n.Expiry.Equal(clock.Now().Add(scrip.NoteLifetime)))
	assert.True(t, note.VerifyIssuerSignature(n, ledger.IssuerKey()))

	// Minting updates the authoritative balance.
	balance, err := ledger.Balance(alice.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	// Ids are unique and monotonic.
	m, err := ledger.Mint(alice.PublicKey(), 10)
	require.NoError(t, err)
	assert.True(t, m.ID > n.ID, "%s > %s", m.ID, n.ID)
}

func TestMintRejections(t *testing.T) {
	ledger, _, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")
	stranger := scriptest.KeyFromSeed("stranger")
	require.NoError(t, ledger.Register(alice.PublicKey()))

	t.Run("unregistered wallet", func(t *testing.T) {
		_, err := ledger.Mint(stranger.PublicKey(), 50)
		assert.True(t, ErrUnregisteredWallet.Is(err), "%+v", err)
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := ledger.Mint(scrip.PubKey("short"), 50)
		assert.True(t, errors.ErrInput.Is(err), "%+v", err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		for _, amount := range []int64{0, -5} {
			_, err := ledger.Mint(alice.PublicKey(), amount)
			assert.True(t, errors.ErrAmount.Is(err), "%+v", err)
		}
	})

	t.Run("amount above limit", func(t *testing.T) {
		_, err := ledger.Mint(alice.PublicKey(), scrip.OfflineBalanceLimit+1)
		assert.True(t, errors.ErrAmount.Is(err), "%+v", err)
	})
}

func TestMintBalanceCap(t *testing.T) {
	ledger, _, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")
	require.NoError(t, ledger.Register(alice.PublicKey()))

	_, err := ledger.Mint(alice.PublicKey(), 950)
	require.NoError(t, err)

	// 950 + 100 breaches the limit.
	_, err = ledger.Mint(alice.PublicKey(), 100)
	require.Error(t, err)
	assert.Equal(t, uint32(114), errors.Code(err), "%+v", err)

	// 950 + 50 lands exactly on it.
	_, err = ledger.Mint(alice.PublicKey(), 50)
	assert.NoError(t, err)

	balance, err := ledger.Balance(alice.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestRedeemEndToEnd(t *testing.T) {
	ledger, _, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")
	bob := scriptest.KeyFromSeed("bob")
	carol := scriptest.KeyFromSeed("carol")
	for _, k := range []scrip.PubKey{alice.PublicKey(), bob.PublicKey(), carol.PublicKey()} {
		require.NoError(t, ledger.Register(k))
	}

	n, err := ledger.Mint(alice.PublicKey(), 50)
	require.NoError(t, err)

	// Offline circulation: alice -> bob -> carol.
	n = hop(t, n, alice, bob.PublicKey())
	n = hop(t, n, bob, carol.PublicKey())

	results := ledger.Redeem(carol.PublicKey(), []*note.Note{n})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.True(t, results[0].Redeemed())
	assert.Equal(t, n.ID, results[0].NoteID)

	// Value moved off alice and is spent, not credited offline to carol.
	balance, err := ledger.Balance(alice.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	balance, err = ledger.Balance(carol.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	// Resubmission is terminally rejected.
	results = ledger.Redeem(carol.PublicKey(), []*note.Note{n})
	require.Len(t, results, 1)
	assert.True(t, ErrAlreadySpent.Is(results[0].Err), "%+v", results[0].Err)
}

func TestRedeemRejections(t *testing.T) {
	ledger, clock, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")
	bob := scriptest.KeyFromSeed("bob")
	mallory := scriptest.KeyFromSeed("mallory")
	require.NoError(t, ledger.Register(alice.PublicKey()))

	minted := func() *note.Note {
		n, err := ledger.Mint(alice.PublicKey(), 10)
		require.NoError(t, err)
		return n
	}

	redeemErr := func(depositor scrip.PubKey, n *note.Note) error {
		results := ledger.Redeem(depositor, []*note.Note{n})
		require.Len(t, results, 1)
		return results[0].Err
	}

	t.Run("unknown note id", func(t *testing.T) {
		n := minted()
		forged := n.Copy()
		forged.ID = "feedfacefeedface"
		err := redeemErr(alice.PublicKey(), forged)
		assert.True(t, ErrUnknownNote.Is(err), "%+v", err)
	})

	t.Run("forged issuer signature", func(t *testing.T) {
		n := minted()
		n.IssuerSignature[0] ^= 0x01
		err := redeemErr(alice.PublicKey(), n)
		assert.True(t, note.ErrIssuerSignature.Is(err), "%+v", err)
	})

	t.Run("forged root", func(t *testing.T) {
		// Mallory rewrites issuedTo and chains the note to herself.
		// The ledger's own record, not the note, is the source of
		// truth; even a re-signed chain cannot help.
		n := minted()
		n.IssuedTo = mallory.PublicKey()
		err := redeemErr(mallory.PublicKey(), hop(t, n, mallory, mallory.PublicKey()))
		// The issuer signature no longer matches the rewritten root.
		assert.True(t, note.ErrIssuerSignature.Is(err), "%+v", err)
	})

	t.Run("issued-to mismatch", func(t *testing.T) {
		// The issuer signature covers issuedTo, so reaching this check
		// needs the authoritative record to disagree with an otherwise
		// authentic note. Tamper the stored record directly: the
		// record, not the note, must win.
		n := minted()
		raw, err := ledger.db.Get(noteKey(n.ID))
		require.NoError(t, err)
		rec, err := unmarshalIssuance(raw)
		require.NoError(t, err)
		rec.IssuedTo = mallory.PublicKey()
		bz, err := rec.marshal()
		require.NoError(t, err)
		require.NoError(t, ledger.db.Set(noteKey(n.ID), bz))

		err = redeemErr(alice.PublicKey(), n)
		assert.True(t, ErrIssuedToMismatch.Is(err), "%+v", err)
	})

	t.Run("hop limit", func(t *testing.T) {
		n := minted()
		signers := []crypto.Signer{alice, bob, mallory, alice}
		targets := []scrip.PubKey{bob.PublicKey(), mallory.PublicKey(), alice.PublicKey(), bob.PublicKey()}
		for i := range signers {
			n = hop(t, n, signers[i], targets[i])
		}
		err := redeemErr(bob.PublicKey(), n)
		assert.True(t, note.ErrHopLimit.Is(err), "%+v", err)
	})

	t.Run("not owned by depositor", func(t *testing.T) {
		n := minted()
		n = hop(t, n, alice, bob.PublicKey())
		err := redeemErr(mallory.PublicKey(), n)
		assert.True(t, ErrNotOwnedByDepositor.Is(err), "%+v", err)
	})

	t.Run("expired", func(t *testing.T) {
		n := minted()
		clock.Advance(scrip.NoteLifetime + time.Second)
		err := redeemErr(alice.PublicKey(), n)
		assert.True(t, errors.ErrExpired.Is(err), "%+v", err)
		clock.Advance(-(scrip.NoteLifetime + time.Second))
	})

	t.Run("nil note", func(t *testing.T) {
		err := redeemErr(alice.PublicKey(), nil)
		assert.True(t, errors.ErrMalformed.Is(err), "%+v", err)
	})
}

func TestRedeemBatchIsolation(t *testing.T) {
	ledger, _, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")
	require.NoError(t, ledger.Register(alice.PublicKey()))

	good1, err := ledger.Mint(alice.PublicKey(), 10)
	require.NoError(t, err)
	bad, err := ledger.Mint(alice.PublicKey(), 10)
	require.NoError(t, err)
	bad.IssuerSignature[0] ^= 0x01
	good2, err := ledger.Mint(alice.PublicKey(), 10)
	require.NoError(t, err)

	results := ledger.Redeem(alice.PublicKey(), []*note.Note{good1, bad, good2})
	require.Len(t, results, 3)
	assert.True(t, results[0].Redeemed())
	assert.False(t, results[1].Redeemed())
	assert.True(t, results[2].Redeemed())
}

func TestRedeemDoubleSpendExclusivity(t *testing.T) {
	ledger, _, _ := testLedger(t)
	alice := scriptest.KeyFromSeed("alice")
	bob := scriptest.KeyFromSeed("bob")
	require.NoError(t, ledger.Register(alice.PublicKey()))
	require.NoError(t, ledger.Register(bob.PublicKey()))

	n, err := ledger.Mint(alice.PublicKey(), 50)
	require.NoError(t, err)
	n = hop(t, n, alice, bob.PublicKey())

	// The same note submitted concurrently: exactly one redemption may
	// win, the other must see it as spent.
	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results := ledger.Redeem(bob.PublicKey(), []*note.Note{n.Copy()})
			errs[i] = results[0].Err
		}(i)
	}
	wg.Wait()

	redeemed := 0
	for _, err := range errs {
		if err == nil {
			redeemed++
		} else {
			assert.True(t, ErrAlreadySpent.Is(err), "%+v", err)
		}
	}
	assert.Equal(t, 1, redeemed)
}

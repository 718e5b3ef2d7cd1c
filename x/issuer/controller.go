package issuer

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/errors"
	"github.com/scripnet/scrip/note"
	"github.com/scripnet/scrip/store"
	"github.com/scripnet/scrip/x/wallet"
)

// Ledger is the issuing authority. Construct one per process with
// NewLedger; all operations are safe for concurrent use.
type Ledger struct {
	mu     sync.Mutex
	db     scrip.KVStore
	signer crypto.Signer
	ids    sequence
	now    func() time.Time
}

// NewLedger returns a ledger persisting to the given store and signing
// notes with the given key.
func NewLedger(db scrip.KVStore, signer crypto.Signer) *Ledger {
	return NewLedgerWithClock(db, signer, time.Now)
}

// NewLedgerWithClock is NewLedger with a controllable time source.
func NewLedgerWithClock(db scrip.KVStore, signer crypto.Signer, now func() time.Time) *Ledger {
	return &Ledger{
		db:     db,
		signer: signer,
		ids:    newSequence("note"),
		now:    now,
	}
}

// IssuerKey returns the public key holders verify notes against.
func (l *Ledger) IssuerKey() scrip.PubKey {
	return l.signer.PublicKey()
}

// Register records a public key as a known wallet. Registering an already
// known key is a no-op, there is no failure mode beyond malformed input.
func (l *Ledger) Register(pub scrip.PubKey) error {
	if err := pub.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.db.Has(walletKey(pub))
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	rec := walletRecord{PubKey: pub, RegisteredAt: l.now().UTC()}
	bz, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal wallet record")
	}
	return l.db.Set(walletKey(pub), bz)
}

// Mint creates, signs and records a fresh note issued to the given wallet.
// The wallet's offline balance, recomputed from the ledger's own records,
// must stay within the limit.
func (l *Ledger) Mint(pub scrip.PubKey, amount int64) (*note.Note, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	registered, err := l.db.Has(walletKey(pub))
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, errors.Wrap(ErrUnregisteredWallet, pub.String())
	}
	if amount <= 0 || amount > scrip.OfflineBalanceLimit {
		return nil, errors.Wrapf(errors.ErrAmount, "%d", amount)
	}

	balance, err := l.balance(pub)
	if err != nil {
		return nil, err
	}
	if balance+amount > scrip.OfflineBalanceLimit {
		return nil, errors.Wrapf(wallet.ErrBalanceCap, "%d + %d exceeds %d", balance, amount, scrip.OfflineBalanceLimit)
	}

	id, err := l.ids.nextID(l.db)
	if err != nil {
		return nil, err
	}

	createdAt := l.now().UTC().Truncate(time.Second)
	expiry := createdAt.Add(scrip.NoteLifetime)
	sig, err := l.signer.Sign(note.MintSignBytes(id, amount, createdAt, expiry, pub))
	if err != nil {
		return nil, errors.Wrap(err, "sign mint fields")
	}

	rec := issuanceRecord{
		NoteID:    id,
		Value:     amount,
		CreatedAt: createdAt,
		Expiry:    expiry,
		IssuedTo:  pub,
		Owner:     pub,
	}
	bz, err := rec.marshal()
	if err != nil {
		return nil, err
	}
	if err := l.db.Set(noteKey(id), bz); err != nil {
		return nil, err
	}

	return &note.Note{
		ID:              id,
		Value:           amount,
		IssuerSignature: sig,
		CreatedAt:       createdAt,
		Expiry:          expiry,
		IssuedTo:        pub,
		TransferChain:   []note.Hop{},
	}, nil
}

// RedeemResult is the outcome of reconciling one submitted note.
type RedeemResult struct {
	NoteID string
	Err    error
}

// Redeemed returns true if the note was accepted and marked spent.
func (r RedeemResult) Redeemed() bool {
	return r.Err == nil
}

// Redeem reconciles the submitted notes on behalf of the depositor. Every
// note is processed independently, one forged or spent note never blocks
// redemption of the others in the same batch. Results come back in
// submission order.
func (l *Ledger) Redeem(depositor scrip.PubKey, notes []*note.Note) []RedeemResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	results := make([]RedeemResult, len(notes))
	for i, n := range notes {
		res := RedeemResult{Err: l.redeemOne(depositor, n)}
		if n != nil {
			res.NoteID = n.ID
		}
		results[i] = res
	}
	return results
}

// redeemOne runs the full reconciliation of a single note. The caller
// holds the ledger lock, making the spent check-then-set indivisible.
func (l *Ledger) redeemOne(depositor scrip.PubKey, n *note.Note) error {
	if n == nil {
		return errors.Wrap(errors.ErrMalformed, "nil note")
	}
	if err := depositor.Validate(); err != nil {
		return errors.Wrap(err, "depositor")
	}

	raw, err := l.db.Get(noteKey(n.ID))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrap(ErrUnknownNote, n.ID)
	}
	rec, err := unmarshalIssuance(raw)
	if err != nil {
		return err
	}

	spent, err := l.db.Has(spentKey(n.ID))
	if err != nil {
		return err
	}
	if spent {
		return errors.Wrap(ErrAlreadySpent, n.ID)
	}

	if !note.VerifyIssuerSignature(n, l.signer.PublicKey()) {
		return errors.Wrap(note.ErrIssuerSignature, n.ID)
	}
	if !n.IssuedTo.Equals(rec.IssuedTo) {
		return errors.Wrapf(ErrIssuedToMismatch, "note %s was issued to %s", n.ID, rec.IssuedTo)
	}

	owner, err := note.VerifyChain(n)
	if err != nil {
		return err
	}
	if !owner.Equals(depositor) {
		return errors.Wrapf(ErrNotOwnedByDepositor, "note %s is owned by %s", n.ID, owner)
	}
	if n.Expired(l.now()) {
		return errors.Wrapf(errors.ErrExpired, "note %s expired at %s", n.ID, n.Expiry)
	}

	// Terminal marking. The spent set only ever grows, a note id is
	// written here at most once.
	if err := l.db.Set(spentKey(n.ID), []byte{1}); err != nil {
		return err
	}
	rec.Owner = depositor
	bz, err := rec.marshal()
	if err != nil {
		return err
	}
	return l.db.Set(noteKey(n.ID), bz)
}

// Balance recomputes the wallet's offline balance from the ledger's own
// issuance records: the sum of all unspent notes currently owned by the
// wallet. Client-reported balances are never consulted.
func (l *Ledger) Balance(pub scrip.PubKey) (int64, error) {
	if err := pub.Validate(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	registered, err := l.db.Has(walletKey(pub))
	if err != nil {
		return 0, err
	}
	if !registered {
		return 0, errors.Wrap(errors.ErrNotFound, "wallet is not registered")
	}
	return l.balance(pub)
}

func (l *Ledger) balance(pub scrip.PubKey) (int64, error) {
	start, end := store.PrefixRange([]byte(notePrefix))
	it, err := l.db.Iterator(start, end)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	var sum int64
	for it.Valid() {
		rec, err := unmarshalIssuance(it.Value())
		if err != nil {
			return 0, err
		}
		if rec.Owner.Equals(pub) {
			spent, err := l.db.Has(spentKey(rec.NoteID))
			if err != nil {
				return 0, err
			}
			if !spent {
				sum += rec.Value
			}
		}
		if err := it.Next(); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

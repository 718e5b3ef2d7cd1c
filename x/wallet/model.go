package wallet

import (
	"sort"
	"sync"
	"time"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/errors"
	"github.com/scripnet/scrip/note"
)

// Wallet is the local state of one holder: a keypair and the set of notes
// it currently believes it owns. All operations are serialized by one lock
// so the check, sign, append, remove sequence is atomic per note id.
type Wallet struct {
	mu     sync.Mutex
	signer crypto.Signer
	issuer scrip.PubKey
	held   map[string]*note.Note
	now    func() time.Time
}

// NewWallet returns an empty wallet for the given keypair, accepting notes
// minted by the given issuer.
func NewWallet(signer crypto.Signer, issuer scrip.PubKey) *Wallet {
	return NewWalletWithClock(signer, issuer, time.Now)
}

// NewWalletWithClock is NewWallet with a controllable time source.
func NewWalletWithClock(signer crypto.Signer, issuer scrip.PubKey, now func() time.Time) *Wallet {
	return &Wallet{
		signer: signer,
		issuer: issuer,
		held:   make(map[string]*note.Note),
		now:    now,
	}
}

// PubKey returns the wallet identity.
func (w *Wallet) PubKey() scrip.PubKey {
	return w.signer.PublicKey()
}

// Balance is the sum of the values of all held notes.
func (w *Wallet) Balance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance()
}

func (w *Wallet) balance() int64 {
	var sum int64
	for _, n := range w.held {
		sum += n.Value
	}
	return sum
}

// Receive validates an incoming note and adds it to the held set. Used for
// freshly minted notes and for peer transfers alike. A note id that is
// already held is rejected as a duplicate before any other check.
func (w *Wallet) Receive(n *note.Note) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.held[n.ID]; ok {
		return errors.Wrapf(errors.ErrDuplicate, "note %s", n.ID)
	}
	if err := AcceptIncoming(n, w.issuer, w.PubKey(), w.balance(), w.now()); err != nil {
		return err
	}
	w.held[n.ID] = n.Copy()
	return nil
}

// Transfer hands a held note over to the recipient. On success the note
// leaves the held set and the returned value, with the new hop appended,
// is what gets sent to the recipient.
func (w *Wallet) Transfer(noteID string, recipient scrip.PubKey) (*note.Note, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, ok := w.held[noteID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "note %s", noteID)
	}
	updated, err := PrepareTransfer(n, w.signer, recipient, w.balance(), w.now())
	if err != nil {
		return nil, err
	}
	delete(w.held, noteID)
	return updated, nil
}

// Held returns copies of all held notes, ordered by note id. The returned
// notes are what a holder submits to the issuer for redemption.
func (w *Wallet) Held() []*note.Note {
	w.mu.Lock()
	defer w.mu.Unlock()

	res := make([]*note.Note, 0, len(w.held))
	for _, n := range w.held {
		res = append(res, n.Copy())
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// Remove drops a note from the held set, e.g. after the issuer confirmed
// its redemption. Removing an unknown id is a no-op.
func (w *Wallet) Remove(noteID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.held, noteID)
}

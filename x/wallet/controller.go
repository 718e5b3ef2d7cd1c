package wallet

import (
	"time"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/errors"
	"github.com/scripnet/scrip/note"
)

// PrepareTransfer builds the hand-off of a note to a recipient: it checks
// the sender really owns the note and local policy allows the transfer,
// then returns a new note value with the signed hop appended. The input
// note is never modified.
//
// On success the caller must remove the note from the sender's held set;
// the recipient adds it only after independent validation (AcceptIncoming).
func PrepareTransfer(n *note.Note, signer crypto.Signer, recipient scrip.PubKey, balance int64, now time.Time) (*note.Note, error) {
	owner, err := note.VerifyChain(n)
	if err != nil {
		return nil, err
	}

	sender := signer.PublicKey()
	if !owner.Equals(sender) {
		return nil, errors.Wrapf(ErrNotOwner, "note %s is owned by %s", n.ID, owner)
	}
	if recipient.Equals(sender) {
		return nil, errors.Wrap(ErrSelfTransfer, n.ID)
	}
	if err := recipient.Validate(); err != nil {
		return nil, errors.Wrap(err, "recipient")
	}
	// Appending one more hop must stay within the limit.
	if len(n.TransferChain) >= scrip.HopLimit {
		return nil, errors.Wrapf(note.ErrHopLimit, "note %s already has %d hops", n.ID, len(n.TransferChain))
	}
	if balance < n.Value {
		return nil, errors.Wrapf(ErrInsufficientBalance, "balance %d, note value %d", balance, n.Value)
	}
	if n.Expired(now) {
		return nil, errors.Wrapf(errors.ErrExpired, "note %s expired at %s", n.ID, n.Expiry)
	}

	sig, err := signer.Sign(note.TransferSignBytes(n.ID, recipient))
	if err != nil {
		return nil, errors.Wrap(err, "sign hop")
	}
	ts := now
	return n.WithHop(note.Hop{
		From:      sender,
		To:        recipient,
		Signature: sig,
		Timestamp: &ts,
	}), nil
}

// AcceptIncoming decides whether a wallet may add a received note to its
// held set: authentic mint fields, an unbroken chain ending at the
// recipient, not expired, and room under the offline balance limit.
//
// This is the security critical gate of offline circulation. It must be
// impossible to pass it without a genuine, correctly ordered signature
// chain rooted at the note's issuance.
func AcceptIncoming(n *note.Note, issuer, recipient scrip.PubKey, balance int64, now time.Time) error {
	if !note.VerifyIssuerSignature(n, issuer) {
		return errors.Wrap(note.ErrIssuerSignature, n.ID)
	}

	owner, err := note.VerifyChain(n)
	if err != nil {
		return err
	}
	if !owner.Equals(recipient) {
		return errors.Wrapf(ErrNotRecipient, "note %s is owned by %s", n.ID, owner)
	}
	if n.Expired(now) {
		return errors.Wrapf(errors.ErrExpired, "note %s expired at %s", n.ID, n.Expiry)
	}
	if balance+n.Value > scrip.OfflineBalanceLimit {
		return errors.Wrapf(ErrBalanceCap, "%d + %d exceeds %d", balance, n.Value, scrip.OfflineBalanceLimit)
	}
	return nil
}

package wallet

import "github.com/scripnet/scrip/errors"

// Holder side policy errors. This package reserves codes 110-119.
var (
	// ErrNotOwner is returned when the sender is not the note's current
	// chain owner.
	ErrNotOwner = errors.Register(110, "not the note owner")

	// ErrSelfTransfer is returned on an attempt to transfer a note to
	// its current owner.
	ErrSelfTransfer = errors.Register(111, "transfer to self")

	// ErrInsufficientBalance is returned when the sender's local balance
	// does not cover the note value.
	ErrInsufficientBalance = errors.Register(112, "insufficient balance")

	// ErrNotRecipient is returned when an incoming note's chain does not
	// end at the receiving wallet.
	ErrNotRecipient = errors.Register(113, "not the recipient")

	// ErrBalanceCap is returned when accepting value would push a wallet
	// over the offline balance limit.
	ErrBalanceCap = errors.Register(114, "offline balance limit exceeded")
)

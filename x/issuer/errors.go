package issuer

import "github.com/scripnet/scrip/errors"

// Reconciliation errors. This package reserves codes 120-129.
var (
	// ErrUnknownNote is returned when a submitted note id has no
	// issuance record.
	ErrUnknownNote = errors.Register(120, "unknown note")

	// ErrAlreadySpent is returned when a note id was redeemed before.
	// Terminal: resubmitting yields the same rejection forever.
	ErrAlreadySpent = errors.Register(121, "already spent")

	// ErrUnregisteredWallet is returned when minting to a public key the
	// ledger has never seen register.
	ErrUnregisteredWallet = errors.Register(122, "unregistered wallet")

	// ErrIssuedToMismatch is returned when a submitted note claims a
	// different first holder than the authoritative issuance record.
	ErrIssuedToMismatch = errors.Register(123, "issued-to mismatch")

	// ErrNotOwnedByDepositor is returned when a valid chain does not end
	// at the wallet submitting the note.
	ErrNotOwnedByDepositor = errors.Register(124, "not owned by depositor")
)

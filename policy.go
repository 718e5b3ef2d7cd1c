package scrip

import "time"

// Policy constants of the offline circulation protocol. Holders and the
// issuer must run with identical values or they will disagree on acceptance
// during offline circulation. The issuer re-checks every limit at
// reconciliation regardless of what holders enforced.
const (
	// HopLimit is the maximum number of offline transfers a note may
	// undergo before it must be reconciled with the issuer.
	HopLimit = 3

	// OfflineBalanceLimit is the maximum total value a single wallet may
	// hold without issuer confirmation.
	OfflineBalanceLimit int64 = 1000

	// NoteLifetime is how long a note stays valid after minting.
	NoteLifetime = 7 * 24 * time.Hour
)

package note

import "github.com/scripnet/scrip/errors"

// Chain validation errors. This package reserves codes 100-109.
var (
	// ErrInvalidSignature is returned when a hop signature does not
	// verify under the hop's from key.
	ErrInvalidSignature = errors.Register(100, "invalid hop signature")

	// ErrBrokenLineage is returned when a hop's from key does not
	// continue the chain resolved so far.
	ErrBrokenLineage = errors.Register(101, "broken lineage")

	// ErrHopLimit is returned when a chain holds, or would grow beyond,
	// more hops than the offline circulation policy allows.
	ErrHopLimit = errors.Register(102, "hop limit exceeded")

	// ErrIssuerSignature is returned when the mint fields do not verify
	// under the issuer key.
	ErrIssuerSignature = errors.Register(103, "invalid issuer signature")
)

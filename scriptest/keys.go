package scriptest

import (
	"github.com/scripnet/scrip/crypto"
)

// NewKey returns a fresh random keypair.
func NewKey() crypto.Signer {
	return crypto.GenPrivKey()
}

// KeyFromSeed returns the keypair deterministically derived from a seed
// string, so fixtures keep stable identities across test runs.
func KeyFromSeed(seed string) crypto.Signer {
	return crypto.PrivKeyFromSeed([]byte(seed))
}

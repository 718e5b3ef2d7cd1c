package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ed25519"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/errors"
)

// Signer is anything that can produce signatures bound to one keypair.
// Every signing capability in the protocol (holder wallets, the issuer)
// is expressed through this interface.
type Signer interface {
	Sign(message []byte) (scrip.Signature, error)
	PublicKey() scrip.PubKey
}

var _ Signer = (PrivateKey)(nil)

// PrivateKey is a raw ed25519 private key.
type PrivateKey []byte

// Sign returns a deterministic signature over the given message.
func (p PrivateKey) Sign(message []byte) (scrip.Signature, error) {
	if len(p) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "private key must be %d bytes", ed25519.PrivateKeySize)
	}
	return scrip.Signature(ed25519.Sign(ed25519.PrivateKey(p), message)), nil
}

// PublicKey returns the corresponding public key.
func (p PrivateKey) PublicKey() scrip.PubKey {
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return scrip.PubKey(pub)
}

// Verify returns true if sig is a valid signature by pub over message.
// Malformed keys or signatures never verify.
func Verify(pub scrip.PubKey, message []byte, sig scrip.Signature) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}

// GenPrivKey returns a random new private key.
func GenPrivKey() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey(priv)
}

// PrivKeyFromSeed will deterministically generate a private key from a
// given seed. The seed may be of any length, it is hashed to the required
// size. Use if you have a strong source of external randomness, or for
// deterministic keys in test cases.
func PrivKeyFromSeed(seed []byte) PrivateKey {
	h := sha256.Sum256(seed)
	return PrivateKey(ed25519.NewKeyFromSeed(h[:]))
}

package scrip

import (
	"bytes"
	"encoding/base64"

	"github.com/scripnet/scrip/errors"
)

const (
	// PubKeySize is the length in bytes of a raw ed25519 public key.
	PubKeySize = 32
	// SignatureSize is the length in bytes of an ed25519 signature.
	SignatureSize = 64
)

// PubKey is a raw ed25519 public key. It is the wallet identity used
// throughout the protocol: notes are issued to a PubKey, hops move ownership
// between PubKeys and the issuer registers PubKeys.
//
// As a []byte it marshals to a std-base64 JSON string, which is the wire
// representation of public keys.
type PubKey []byte

// Equals returns true if both keys hold the same bytes.
func (p PubKey) Equals(other PubKey) bool {
	return bytes.Equal(p, other)
}

// String returns the std-base64 representation, the same form used on the
// wire and inside transfer sign bytes.
func (p PubKey) String() string {
	return base64.StdEncoding.EncodeToString(p)
}

// Validate returns an error if this is not a well-formed ed25519 public key.
func (p PubKey) Validate() error {
	if len(p) != PubKeySize {
		return errors.Wrapf(errors.ErrInput, "public key must be %d bytes, got %d", PubKeySize, len(p))
	}
	return nil
}

// Signature is a raw ed25519 signature. Marshals to a std-base64 JSON
// string.
type Signature []byte

// Validate returns an error if this is not a well-formed ed25519 signature.
func (s Signature) Validate() error {
	if len(s) != SignatureSize {
		return errors.Wrapf(errors.ErrInput, "signature must be %d bytes, got %d", SignatureSize, len(s))
	}
	return nil
}

// String returns the std-base64 representation.
func (s Signature) String() string {
	return base64.StdEncoding.EncodeToString(s)
}

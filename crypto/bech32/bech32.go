// Package bech32 provides the human readable display encoding of wallet
// identities, e.g. "scrip1...". It is used in logs and CLI output only. The
// wire format of public keys stays std-base64.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/errors"
)

// MainHRP is the human readable prefix of wallet identities.
const MainHRP = "scrip"

// Decode converts given bech32 encoded representation into raw payload and
// a human readable part.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return hrp, payload, nil
}

// Encode converts given bytes into bech32 encoded representation.
func Encode(hrp string, payload []byte) (string, error) {
	payload, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// PubKeyString renders a public key in the display encoding. A key that
// cannot be encoded is rendered as its base64 form instead.
func PubKeyString(pub scrip.PubKey) string {
	raw, err := Encode(MainHRP, pub)
	if err != nil {
		return pub.String()
	}
	return raw
}

// DecodePubKey parses a display encoded wallet identity.
func DecodePubKey(raw string) (scrip.PubKey, error) {
	hrp, payload, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if hrp != MainHRP {
		return nil, errors.Wrapf(errors.ErrInput, "unexpected prefix %q", hrp)
	}
	pub := scrip.PubKey(payload)
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	return pub, nil
}

package bech32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scripnet/scrip/crypto"
)

func TestPubKeyRoundTrip(t *testing.T) {
	pub := crypto.GenPrivKey().PublicKey()

	raw := PubKeyString(pub)
	assert.True(t, strings.HasPrefix(raw, MainHRP+"1"), raw)

	got, err := DecodePubKey(raw)
	require.NoError(t, err)
	assert.True(t, pub.Equals(got))
}

func TestDecodePubKeyWrongPrefix(t *testing.T) {
	other, err := Encode("cash", crypto.GenPrivKey().PublicKey())
	require.NoError(t, err)

	_, err = DecodePubKey(other)
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode("not a bech32 string")
	assert.Error(t, err)
}

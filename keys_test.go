package scrip

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubKeyValidate(t *testing.T) {
	cases := map[string]struct {
		key     PubKey
		wantErr bool
	}{
		"valid":     {key: PubKey(bytes.Repeat([]byte{1}, PubKeySize))},
		"nil":       {key: nil, wantErr: true},
		"too short": {key: PubKey("abc"), wantErr: true},
		"too long":  {key: PubKey(bytes.Repeat([]byte{1}, PubKeySize+1)), wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.key.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignatureValidate(t *testing.T) {
	assert.NoError(t, Signature(bytes.Repeat([]byte{2}, SignatureSize)).Validate())
	assert.Error(t, Signature(nil).Validate())
	assert.Error(t, Signature("short").Validate())
}

func TestPubKeyEquals(t *testing.T) {
	a := PubKey(bytes.Repeat([]byte{3}, PubKeySize))
	b := PubKey(bytes.Repeat([]byte{3}, PubKeySize))
	c := PubKey(bytes.Repeat([]byte{4}, PubKeySize))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestPubKeyJSON(t *testing.T) {
	// Keys travel as std-base64 strings on the wire.
	key := PubKey(bytes.Repeat([]byte{5}, PubKeySize))
	raw, err := json.Marshal(key)
	require.NoError(t, err)
	assert.Equal(t, `"`+key.String()+`"`, string(raw))

	var back PubKey
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, key.Equals(back))
}

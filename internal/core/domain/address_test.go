package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	hex := "0x9a1f5cbd4e0b3e1e1c2b6a37d0b1f7e6a9c4d211"

	a, err := ParseAddress(hex)
	require.NoError(t, err)
	assert.Equal(t, hex, a.String())
	assert.False(t, a.IsZero())

	noPrefix, err := ParseAddress(hex[2:])
	require.NoError(t, err)
	assert.Equal(t, a, noPrefix)

	fromNeo, err := ParseAddress(a.NeoAddress())
	require.NoError(t, err)
	assert.Equal(t, a, fromNeo)

	for _, bad := range []string{"", "0x12", "0xzz1f5cbd4e0b3e1e1c2b6a37d0b1f7e6a9c4d211", "not an address"} {
		_, err := ParseAddress(bad)
		assert.Error(t, err, bad)
	}
}

func TestAddressJSON(t *testing.T) {
	type payload struct {
		Owner Address `json:"owner"`
	}
	in := payload{Owner: MustParseAddress("0x00000000000000000000000000000000000000c1")}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"0x00000000000000000000000000000000000000c1"}`, string(raw))

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"owner":"0x1"}`), &out))
}

func TestParseTokenID(t *testing.T) {
	id, err := ParseTokenID("42")
	require.NoError(t, err)
	assert.Equal(t, TokenID(42), id)
	assert.Equal(t, "42", id.String())

	_, err = ParseTokenID("-1")
	assert.Error(t, err)
}

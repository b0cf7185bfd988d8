package entity

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkState_EncodeDecode(t *testing.T) {
	state := LinkState{From: LinkFromEmailVerify, Code: "verify-abc"}

	encoded, err := state.Encode()
	require.NoError(t, err)

	decoded, err := DecodeLinkState(encoded)
	require.NoError(t, err)
	assert.Equal(t, state, *decoded)
}

func TestDecodeLinkState_AcceptsURLSafeAlphabet(t *testing.T) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(`{"from":"settings"}`))

	decoded, err := DecodeLinkState(encoded)
	require.NoError(t, err)
	assert.Equal(t, LinkFromSettings, decoded.From)
}

func TestDecodeLinkState_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not base64", input: "%%%not-base64%%%"},
		{name: "not json", input: base64.StdEncoding.EncodeToString([]byte("from=settings"))},
		{name: "truncated json", input: base64.StdEncoding.EncodeToString([]byte(`{"from":`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				state, err := DecodeLinkState(tt.input)
				assert.Error(t, err)
				assert.Nil(t, state)
			})
		})
	}
}

func TestLinkOrigin_IsValid(t *testing.T) {
	assert.True(t, LinkFromSettings.IsValid())
	assert.True(t, LinkFromSignup.IsValid())
	assert.True(t, LinkFromEmailVerify.IsValid())
	assert.False(t, LinkOrigin("admin").IsValid())
}

package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaqueTokenGenerator_Generate(t *testing.T) {
	gen := NewOpaqueTokenGenerator()

	token, err := gen.Generate()
	require.NoError(t, err)

	// 128 random bytes, hex encoded.
	decoded, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenBytes)
	assert.Len(t, token, tokenBytes*2)
}

func TestOpaqueTokenGenerator_GenerateIsUnique(t *testing.T) {
	gen := NewOpaqueTokenGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		token, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		assert.False(t, dup, "token generated twice")
		seen[token] = struct{}{}
	}
}

package auth

import (
	"crypto/rand"
	"encoding/hex"

	"pinboard/internal/domain/service"
	"pinboard/internal/errors"
)

// tokenBytes is the entropy size of an access token. At 128 random bytes the
// token space is large enough that collisions are negligible; the store's
// unique constraint on the token column is the backstop.
const tokenBytes = 128

// opaqueTokenGenerator mints access tokens from crypto/rand, hex encoded.
type opaqueTokenGenerator struct{}

// NewOpaqueTokenGenerator is the constructor for opaqueTokenGenerator.
func NewOpaqueTokenGenerator() service.TokenGenerator {
	return &opaqueTokenGenerator{}
}

// Generate returns a fresh 256-character hex token backed by 128 random bytes.
func (g *opaqueTokenGenerator) Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to read random token bytes")
	}

	return hex.EncodeToString(b), nil
}

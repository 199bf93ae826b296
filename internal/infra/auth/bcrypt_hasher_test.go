package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	secret := "pass123"
	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(secret, hash))
}

func TestBcryptHasher_HashProducesFreshSalt(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	secret := "pass123"
	first, err := hasher.Hash(secret)
	assert.NoError(t, err)
	second, err := hasher.Hash(secret)
	assert.NoError(t, err)

	// Same secret, different salts, different hashes; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(secret, first))
	assert.True(t, hasher.Check(secret, second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	secret := "pass123"

	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)

	// Test correct secret
	assert.True(t, hasher.Check(secret, hash))

	// Test incorrect secret
	assert.False(t, hasher.Check("wrong123", hash))

	// Test empty secret
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(secret, "invalid_hash"))
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(-1)

	hash, err := hasher.Hash("pass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

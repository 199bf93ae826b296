package service

// TokenGenerator mints opaque access tokens. Minting is explicit and happens
// in the credential service before the identity is constructed, so the
// randomness source and entropy size stay visible and testable rather than
// hiding behind a storage-layer default.
type TokenGenerator interface {
	// Generate returns a fresh high-entropy opaque token.
	Generate() (string, error)
}

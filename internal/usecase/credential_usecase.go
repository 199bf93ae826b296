// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyInput defines the data required to verify an existing identity.
type VerifyInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// CredentialOutput is the response for both registration and verification.
// It carries the access token the client must retain and present on every
// protected call. The secret hash never appears here.
type CredentialOutput struct {
	UserID      uuid.UUID `json:"userId"`
	Username    string    `json:"username"`
	AccessToken string    `json:"accessToken"`
}

// CredentialUsecase defines the interface for identity lifecycle and credential verification.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CredentialUsecase interface {
	// Register creates a new identity: validates the input, hashes the
	// secret, mints the access token and persists the result.
	Register(ctx context.Context, input *RegisterInput) (*CredentialOutput, error)

	// Verify checks a username/secret pair and returns the identity's
	// existing access token. It never mints a new token.
	Verify(ctx context.Context, input *VerifyInput) (*CredentialOutput, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pinboard/internal/domain/entity"
)

// ErrIdentityNotFound is a domain-specific error returned when no identity
// matches a lookup. Absence is a normal outcome for both username and token
// lookups, so callers branch on this sentinel rather than on store errors.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the standard operations for identity persistence.
// The application layer will depend on this interface, not the concrete implementation.
// There are no update or delete operations: identities are immutable once stored.
type IdentityRepository interface {
	// Insert persists a new identity. The store assigns the ID. A username
	// collision fails with the domain conflict error; under concurrent
	// registration of the same username exactly one Insert succeeds.
	Insert(ctx context.Context, identity *entity.Identity) error

	// FindByUsername retrieves a single identity by its exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.Identity, error)

	// FindByToken retrieves the identity holding the given access token.
	FindByToken(ctx context.Context, token string) (*entity.Identity, error)
}

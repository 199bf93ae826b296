// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the core entity in the system, representing one registered account.
// An Identity is immutable after creation: no field is ever updated and records
// are never deleted by normal operation.
type Identity struct {
	ID          uuid.UUID // Unique identifier, assigned by the store at creation.
	Username    string    // Globally unique, case-sensitive login name.
	SecretHash  string    // Salted bcrypt hash of the chosen secret. Never the plaintext, never exposed.
	AccessToken string    // Opaque high-entropy token minted once at registration. The sole credential for protected calls.
	CreatedAt   time.Time // Timestamp of when this identity was created.
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record is a short shared text item. It carries no ownership or
// authorization data of its own; access is controlled entirely by the gate
// in front of the record routes.
type Record struct {
	ID        uuid.UUID
	Message   string
	CreatedAt time.Time
}

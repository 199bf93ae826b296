// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pinboard/internal/domain/entity"
)

// RecordRepository defines the operations for record persistence.
type RecordRepository interface {
	// Create persists a new record. The store assigns the ID.
	Create(ctx context.Context, record *entity.Record) error

	// List returns all records, oldest first.
	List(ctx context.Context) ([]*entity.Record, error)
}

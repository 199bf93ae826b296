package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CreateRecordInput defines the data required to create a record.
type CreateRecordInput struct {
	Message string `json:"message" validate:"required"`
}

// RecordOutput is the wire representation of a single record.
type RecordOutput struct {
	RecordID uuid.UUID `json:"recordId"`
	Message  string    `json:"message"`
}

// RecordUsecase defines the operations on the shared record collection.
// It carries no authorization logic of its own; the access gate in the
// delivery layer decides who gets this far.
type RecordUsecase interface {
	CreateRecord(ctx context.Context, input *CreateRecordInput) (*RecordOutput, error)
	ListRecords(ctx context.Context) ([]*RecordOutput, error)
}

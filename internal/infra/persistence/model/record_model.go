package model

import (
	"time"

	"github.com/google/uuid"
)

// RecordModel mirrors the 'records' table.
type RecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}

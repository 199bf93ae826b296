package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique constraints on username and access_token are
// what make concurrent registration single-writer-wins: the database, not the
// application, arbitrates the race.
type IdentityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username    string    `gorm:"type:varchar(255);unique;not null"`
	SecretHash  string    `gorm:"type:varchar(255);not null"`
	AccessToken string    `gorm:"type:varchar(512);unique;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

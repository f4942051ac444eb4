// Package model holds the GORM table structs backing the domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
// Roles is stored as a comma-separated list ("customer,courier").
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Roles     string    `gorm:"type:varchar(255);not null;default:'customer'"`
	PushToken string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

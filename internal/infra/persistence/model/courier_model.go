package model

import (
	"time"

	"github.com/google/uuid"
)

// CourierModel is the GORM-specific struct for the 'couriers' table.
type CourierModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_couriers_on_customer"`
	VehicleType string    `gorm:"type:varchar(20);not null"`
	IsAvailable bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierModel) TableName() string {
	return "couriers"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID            uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_customer"`
	AddressID             uuid.UUID `gorm:"type:uuid;not null"`
	PharmacyID            uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_pharmacy"`
	PrescriptionNo        string    `gorm:"type:varchar(100)"`
	PrescriptionImagePath string    `gorm:"type:text"`
	Note                  string    `gorm:"type:text"`
	Status                string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_orders_on_status"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

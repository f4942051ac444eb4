package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Coordinates are nullable; an unresolved address has neither.
type AddressModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_customer"`
	Title            string    `gorm:"type:varchar(20);not null"`
	CustomTitle      string    `gorm:"type:varchar(100)"`
	City             string    `gorm:"type:varchar(100);not null"`
	District         string    `gorm:"type:varchar(100)"`
	Neighborhood     string    `gorm:"type:varchar(100)"`
	Street           string    `gorm:"type:varchar(255)"`
	BuildingNo       string    `gorm:"type:varchar(20)"`
	Floor            string    `gorm:"type:varchar(20)"`
	ApartmentNo      string    `gorm:"type:varchar(20)"`
	Description      string    `gorm:"type:text"`
	Latitude         *float64  `gorm:"type:decimal(10,8)"`
	Longitude        *float64  `gorm:"type:decimal(11,8)"`
	FormattedAddress *string   `gorm:"type:text"`
	IsDefault        bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

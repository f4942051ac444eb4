package model

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyModel is the GORM-specific struct for the 'pharmacies' table.
type PharmacyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pharmacies_on_owner"`
	Name         string    `gorm:"type:varchar(255);not null;index:idx_pharmacies_on_name"`
	Phone        string    `gorm:"type:varchar(32)"`
	City         string    `gorm:"type:varchar(100)"`
	District     string    `gorm:"type:varchar(100)"`
	Neighborhood string    `gorm:"type:varchar(100)"`
	Street       string    `gorm:"type:varchar(255)"`
	BuildingNo   string    `gorm:"type:varchar(20)"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PharmacyModel) TableName() string {
	return "pharmacies"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Courier is the delivery role attached to a user account. The customer
// flow never touches it; the only operation is the availability toggle.
type Courier struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	VehicleType string // "motorcycle", "car", "bicycle" or "scooter".
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package repository

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/errors"

	"github.com/google/uuid"
)

// ErrCourierNotFound is returned when a courier profile is not found.
var ErrCourierNotFound = errors.New("courier not found")

// CourierRepository defines the interface for courier profile persistence.
type CourierRepository interface {
	// FindCourierByCustomer retrieves the courier profile of a user account.
	FindCourierByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Courier, error)

	// UpdateAvailability toggles the courier's availability flag.
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

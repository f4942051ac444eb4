package repository

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer profile reads and
// the push-token write the mobile client performs on registration.
type CustomerRepository interface {
	// FindCustomerByID retrieves a customer profile by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// UpdatePushToken stores the FCM device token for a customer.
	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error
}

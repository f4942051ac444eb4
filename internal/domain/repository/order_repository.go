package repository

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order row.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves all orders of a customer, newest first.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindOrdersByPharmacy retrieves all orders assigned to a pharmacy, newest first.
	FindOrdersByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus moves the order to the given status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

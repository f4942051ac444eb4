package usecase

import (
	"context"

	"pharmadrop/internal/domain/entity"

	"github.com/google/uuid"
)

// CourierUsecase defines the courier surface. The only operation is the
// availability toggle; dispatching is out of scope.
type CourierUsecase interface {
	// SetAvailability toggles whether the courier accepts deliveries.
	SetAvailability(ctx context.Context, customerID uuid.UUID, available bool) (*entity.Courier, error)
}

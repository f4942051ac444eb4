package impl

import (
	"context"

	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/errors"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
)

type courierService struct {
	couriers repository.CourierRepository
}

// NewCourierService creates the courier use case.
func NewCourierService(couriers repository.CourierRepository) usecase.CourierUsecase {
	return &courierService{couriers: couriers}
}

func (s *courierService) SetAvailability(ctx context.Context, customerID uuid.UUID, available bool) (*entity.Courier, error) {
	courier, err := s.couriers.FindCourierByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCourierNotFound) {
			return nil, domainerrors.ErrCourierNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load courier profile")
	}

	if err := s.couriers.UpdateAvailability(ctx, courier.ID, available); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update availability")
	}
	courier.IsAvailable = available

	return courier, nil
}

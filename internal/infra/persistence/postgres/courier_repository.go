package postgres

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courierRepository implements the repository.CourierRepository interface.
type courierRepository struct {
	db *gorm.DB
}

// NewCourierRepository is the constructor for courierRepository.
func NewCourierRepository(db *gorm.DB) repository.CourierRepository {
	return &courierRepository{
		db: db,
	}
}

// FindCourierByCustomer retrieves the courier profile of a user account.
func (repo *courierRepository) FindCourierByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Courier, error) {
	var courierM model.CourierModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&courierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourierNotFound
		}

		return nil, errors.Wrap(err, "failed to find courier by customer")
	}

	return toCourierDomain(&courierM), nil
}

// UpdateAvailability toggles the courier's availability flag.
func (repo *courierRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourierModel{}).
		Where("id = ?", id).
		Update("is_available", available)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update courier availability")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourierNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCourierDomain converts a GORM CourierModel to a domain Courier entity.
func toCourierDomain(data *model.CourierModel) *entity.Courier {
	if data == nil {
		return nil
	}

	return &entity.Courier{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		VehicleType: data.VehicleType,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

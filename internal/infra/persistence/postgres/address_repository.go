// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address for a customer.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressNotFound.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required address fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByCustomer retrieves all addresses for a customer, default
// first then newest first.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_default DESC, created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select("title", "custom_title", "city", "district", "neighborhood",
			"street", "building_no", "floor", "apartment_no", "description",
			"latitude", "longitude", "formatted_address", "is_default").
		Updates(addressM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefaultForCustomer unsets the default flag on every address of the customer.
func (repo *addressRepository) ClearDefaultForCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default addresses")
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Title:            entity.AddressTitle(data.Title),
		CustomTitle:      data.CustomTitle,
		City:             data.City,
		District:         data.District,
		Neighborhood:     data.Neighborhood,
		Street:           data.Street,
		BuildingNo:       data.BuildingNo,
		Floor:            data.Floor,
		ApartmentNo:      data.ApartmentNo,
		Description:      data.Description,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		FormattedAddress: data.FormattedAddress,
		IsDefault:        data.IsDefault,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Title:            string(data.Title),
		CustomTitle:      data.CustomTitle,
		City:             data.City,
		District:         data.District,
		Neighborhood:     data.Neighborhood,
		Street:           data.Street,
		BuildingNo:       data.BuildingNo,
		Floor:            data.Floor,
		ApartmentNo:      data.ApartmentNo,
		Description:      data.Description,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		FormattedAddress: data.FormattedAddress,
		IsDefault:        data.IsDefault,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

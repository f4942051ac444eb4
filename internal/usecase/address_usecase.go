package usecase

import (
	"context"

	"pharmadrop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput represents the input for saving a new delivery address.
type AddAddressInput struct {
	Title        entity.AddressTitle `json:"title"`
	CustomTitle  string              `json:"custom_title"`
	City         string              `json:"city"`
	District     string              `json:"district"`
	Neighborhood string              `json:"neighborhood"`
	Street       string              `json:"street"`
	BuildingNo   string              `json:"building_no"`
	Floor        string              `json:"floor"`
	ApartmentNo  string              `json:"apartment_no"`
	Description  string              `json:"description"`
	IsDefault    bool                `json:"is_default"`

	// Coordinates already resolved by the client's map picker. When absent
	// the use case attempts geocoding of the structured components.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AddressUsecase defines the interface for delivery-address management.
type AddressUsecase interface {
	// ListAddresses retrieves the customer's addresses, default first then
	// newest first.
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// AddAddress saves a new address, geocoding the structured components
	// best-effort when no coordinates were supplied.
	AddAddress(ctx context.Context, customerID uuid.UUID, input *AddAddressInput) (*entity.Address, error)

	// SetDefaultAddress marks one address as the default and clears the
	// flag on the customer's other addresses.
	SetDefaultAddress(ctx context.Context, customerID, addressID uuid.UUID) error

	// DeleteAddress removes one of the customer's addresses.
	DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error
}

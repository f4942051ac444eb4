package impl

import (
	"context"
	"log/slog"
	"strings"

	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/errors"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
)

type addressService struct {
	addresses repository.AddressRepository
	txManager repository.TransactionManager
	geocoder  usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewAddressService creates the address use case.
func NewAddressService(
	addresses repository.AddressRepository,
	txManager repository.TransactionManager,
	geocoder usecase.GeocodeUsecase,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addresses: addresses,
		txManager: txManager,
		geocoder:  geocoder,
		logger:    logger,
	}
}

func (s *addressService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := s.addresses.FindAddressesByCustomer(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	return addresses, nil
}

// AddAddress saves a new address. When the client supplied no coordinates the
// structured components are geocoded best effort; an unresolved address is
// saved without coordinates and keeps working through the manual pharmacy
// picker.
func (s *addressService) AddAddress(ctx context.Context, customerID uuid.UUID, input *usecase.AddAddressInput) (*entity.Address, error) {
	if !input.Title.Valid() {
		return nil, domainerrors.ErrCustomTitleRequired.WithDetails("unknown address title " + string(input.Title))
	}

	customTitle := strings.TrimSpace(input.CustomTitle)
	if input.Title == entity.AddressTitleOther && customTitle == "" {
		return nil, domainerrors.ErrCustomTitleRequired
	}

	address := &entity.Address{
		ID:           uuid.New(),
		CustomerID:   customerID,
		Title:        input.Title,
		CustomTitle:  customTitle,
		City:         strings.TrimSpace(input.City),
		District:     strings.TrimSpace(input.District),
		Neighborhood: strings.TrimSpace(input.Neighborhood),
		Street:       strings.TrimSpace(input.Street),
		BuildingNo:   strings.TrimSpace(input.BuildingNo),
		Floor:        strings.TrimSpace(input.Floor),
		ApartmentNo:  strings.TrimSpace(input.ApartmentNo),
		Description:  strings.TrimSpace(input.Description),
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		IsDefault:    input.IsDefault,
	}

	if address.Latitude == nil || address.Longitude == nil {
		s.resolveCoordinates(ctx, address)
	}

	if address.IsDefault {
		// Clearing the previous default and inserting the new one commit
		// together.
		err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			txAddresses := repoFactory.NewAddressRepository()
			if err := txAddresses.ClearDefaultForCustomer(ctx, customerID); err != nil {
				return err
			}

			return txAddresses.CreateAddress(ctx, address)
		})
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save address")
		}

		return address, nil
	}

	if err := s.addresses.CreateAddress(ctx, address); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save address")
	}

	return address, nil
}

// resolveCoordinates fills in coordinates and the formatted text from the
// geocoder chain. Failures and unresolved answers leave the address as is.
func (s *addressService) resolveCoordinates(ctx context.Context, address *entity.Address) {
	result, err := s.geocoder.Resolve(ctx, service.AddressComponents{
		City:         address.City,
		District:     address.District,
		Neighborhood: address.Neighborhood,
		Street:       address.Street,
		BuildingNo:   address.BuildingNo,
	})
	if err != nil || result == nil {
		s.logger.Info("address saved without coordinates",
			slog.String("address_id", address.ID.String()),
			slog.String("city", address.City),
		)

		return
	}

	address.Latitude = &result.Latitude
	address.Longitude = &result.Longitude
	if result.FormattedAddress != "" {
		address.FormattedAddress = &result.FormattedAddress
	}
}

func (s *addressService) SetDefaultAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	address, err := s.findOwnedAddress(ctx, customerID, addressID)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txAddresses := repoFactory.NewAddressRepository()
		if err := txAddresses.ClearDefaultForCustomer(ctx, customerID); err != nil {
			return err
		}
		address.IsDefault = true

		return txAddresses.UpdateAddress(ctx, address)
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set default address")
	}

	return nil
}

func (s *addressService) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	if _, err := s.findOwnedAddress(ctx, customerID, addressID); err != nil {
		return err
	}

	if err := s.addresses.DeleteAddress(ctx, addressID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete address")
	}

	return nil
}

func (s *addressService) findOwnedAddress(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := s.addresses.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load address")
	}
	if address.CustomerID != customerID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/mocks"
	"pharmadrop/internal/usecase"
)

type addressServiceFixture struct {
	addresses *mocks.AddressRepository
	txManager *mocks.TransactionManager
	geocoder  *mocks.GeocodeUsecase
	svc       usecase.AddressUsecase
}

func newAddressServiceFixture() *addressServiceFixture {
	f := &addressServiceFixture{
		addresses: new(mocks.AddressRepository),
		geocoder:  new(mocks.GeocodeUsecase),
	}
	factory := new(mocks.RepositoryFactory)
	factory.On("NewAddressRepository").Return(f.addresses).Maybe()
	f.txManager = &mocks.TransactionManager{Factory: factory}
	f.svc = NewAddressService(f.addresses, f.txManager, f.geocoder, slog.New(slog.DiscardHandler))

	return f
}

func TestAddAddress_GeocodesWhenNoClientCoordinates(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()

	f := newAddressServiceFixture()
	f.geocoder.On("Resolve", mock.Anything, service.AddressComponents{
		City:         "Istanbul",
		District:     "Kadikoy",
		Neighborhood: "Moda",
		Street:       "Bahariye Cd",
		BuildingNo:   "12",
	}).Return(&service.GeocodeResult{Latitude: 40.987, Longitude: 29.036, FormattedAddress: "Bahariye Cd 12, Kadikoy"}, nil).Once()
	f.addresses.On("CreateAddress", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.Latitude != nil && *a.Latitude == 40.987 &&
			a.FormattedAddress != nil && *a.FormattedAddress == "Bahariye Cd 12, Kadikoy"
	})).Return(nil).Once()

	address, err := f.svc.AddAddress(context.Background(), customerID, &usecase.AddAddressInput{
		Title:        entity.AddressTitleHome,
		City:         "Istanbul",
		District:     "Kadikoy",
		Neighborhood: "Moda",
		Street:       "Bahariye Cd",
		BuildingNo:   "12",
	})
	require.NoError(t, err)
	assert.Equal(t, customerID, address.CustomerID)
	f.addresses.AssertExpectations(t)
	f.geocoder.AssertExpectations(t)
}

func TestAddAddress_UnresolvedGeocodeStillSaves(t *testing.T) {
	t.Parallel()

	f := newAddressServiceFixture()
	f.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil)
	f.addresses.On("CreateAddress", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.Latitude == nil && a.Longitude == nil && a.FormattedAddress == nil
	})).Return(nil).Once()

	address, err := f.svc.AddAddress(context.Background(), uuid.New(), &usecase.AddAddressInput{
		Title: entity.AddressTitleWork,
		City:  "Istanbul",
	})
	require.NoError(t, err)
	assert.Nil(t, address.Latitude)
	f.addresses.AssertExpectations(t)
}

func TestAddAddress_ClientCoordinatesSkipGeocoder(t *testing.T) {
	t.Parallel()

	lat, lon := 41.01, 28.97

	f := newAddressServiceFixture()
	f.addresses.On("CreateAddress", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.AddAddress(context.Background(), uuid.New(), &usecase.AddAddressInput{
		Title:     entity.AddressTitleHome,
		City:      "Istanbul",
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)
	f.geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAddAddress_OtherTitleRequiresCustomTitle(t *testing.T) {
	t.Parallel()

	f := newAddressServiceFixture()

	_, err := f.svc.AddAddress(context.Background(), uuid.New(), &usecase.AddAddressInput{
		Title:       entity.AddressTitleOther,
		CustomTitle: "   ",
		City:        "Istanbul",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomTitleRequired)
	f.addresses.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything)
}

func TestAddAddress_DefaultClearsOthersInOneTransaction(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()

	f := newAddressServiceFixture()
	f.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil)
	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil).Once()
	f.addresses.On("ClearDefaultForCustomer", mock.Anything, customerID).Return(nil).Once()
	f.addresses.On("CreateAddress", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.IsDefault
	})).Return(nil).Once()

	_, err := f.svc.AddAddress(context.Background(), customerID, &usecase.AddAddressInput{
		Title:     entity.AddressTitleHome,
		City:      "Istanbul",
		IsDefault: true,
	})
	require.NoError(t, err)
	f.addresses.AssertExpectations(t)
	f.txManager.AssertExpectations(t)
}

func TestSetDefaultAddress(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	addressID := uuid.New()

	f := newAddressServiceFixture()
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil).Once()
	f.addresses.On("ClearDefaultForCustomer", mock.Anything, customerID).Return(nil).Once()
	f.addresses.On("UpdateAddress", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ID == addressID && a.IsDefault
	})).Return(nil).Once()

	err := f.svc.SetDefaultAddress(context.Background(), customerID, addressID)
	require.NoError(t, err)
	f.addresses.AssertExpectations(t)
}

func TestSetDefaultAddress_ForeignAddress(t *testing.T) {
	t.Parallel()

	addressID := uuid.New()

	f := newAddressServiceFixture()
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: uuid.New()}, nil)

	err := f.svc.SetDefaultAddress(context.Background(), uuid.New(), addressID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	f.addresses.AssertNotCalled(t, "UpdateAddress", mock.Anything, mock.Anything)
}

func TestDeleteAddress(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	addressID := uuid.New()

	f := newAddressServiceFixture()
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	f.addresses.On("DeleteAddress", mock.Anything, addressID).Return(nil).Once()

	require.NoError(t, f.svc.DeleteAddress(context.Background(), customerID, addressID))
	f.addresses.AssertExpectations(t)
}

func TestListAddresses_RepositoryError(t *testing.T) {
	t.Parallel()

	f := newAddressServiceFixture()
	f.addresses.On("FindAddressesByCustomer", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := f.svc.ListAddresses(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
}

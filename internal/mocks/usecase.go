package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/geo"
	"pharmadrop/internal/usecase"
)

// GeocodeUsecase is a mock of usecase.GeocodeUsecase.
type GeocodeUsecase struct {
	mock.Mock
}

func (m *GeocodeUsecase) Resolve(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error) {
	args := m.Called(ctx, components)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.GeocodeResult), args.Error(1)
}

// OrderUsecase is a mock of usecase.OrderUsecase.
type OrderUsecase struct {
	mock.Mock
}

func (m *OrderUsecase) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderUsecase) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *OrderUsecase) ListPharmacyOrders(ctx context.Context, pharmacyOwnerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, pharmacyOwnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *OrderUsecase) ApproveOrder(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, pharmacyOwnerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderUsecase) RejectOrder(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, pharmacyOwnerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderUsecase) PrescriptionImage(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) ([]byte, string, error) {
	args := m.Called(ctx, pharmacyOwnerID, orderID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}

	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *OrderUsecase) PickupQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, customerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// AddressUsecase is a mock of usecase.AddressUsecase.
type AddressUsecase struct {
	mock.Mock
}

func (m *AddressUsecase) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Address), args.Error(1)
}

func (m *AddressUsecase) AddAddress(ctx context.Context, customerID uuid.UUID, input *usecase.AddAddressInput) (*entity.Address, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *AddressUsecase) SetDefaultAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	args := m.Called(ctx, customerID, addressID)

	return args.Error(0)
}

func (m *AddressUsecase) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	args := m.Called(ctx, customerID, addressID)

	return args.Error(0)
}

// PharmacyUsecase is a mock of usecase.PharmacyUsecase.
type PharmacyUsecase struct {
	mock.Mock
}

func (m *PharmacyUsecase) ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Pharmacy), args.Error(1)
}

func (m *PharmacyUsecase) NearbyPharmacies(ctx context.Context, customerID, addressID uuid.UUID) ([]geo.Candidate, error) {
	args := m.Called(ctx, customerID, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]geo.Candidate), args.Error(1)
}

// CourierUsecase is a mock of usecase.CourierUsecase.
type CourierUsecase struct {
	mock.Mock
}

func (m *CourierUsecase) SetAvailability(ctx context.Context, customerID uuid.UUID, available bool) (*entity.Courier, error) {
	args := m.Called(ctx, customerID, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Courier), args.Error(1)
}

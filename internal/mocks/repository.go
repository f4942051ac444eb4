// Package mocks provides testify mocks for the repository and service
// interfaces used in unit tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/domain/repository"
)

// AddressRepository is a mock of repository.AddressRepository.
type AddressRepository struct {
	mock.Mock
}

func (m *AddressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *AddressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *AddressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Address), args.Error(1)
}

func (m *AddressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *AddressRepository) ClearDefaultForCustomer(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)

	return args.Error(0)
}

func (m *AddressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// PharmacyRepository is a mock of repository.PharmacyRepository.
type PharmacyRepository struct {
	mock.Mock
}

func (m *PharmacyRepository) FindPharmacyByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Pharmacy), args.Error(1)
}

func (m *PharmacyRepository) FindPharmacyByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pharmacy, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Pharmacy), args.Error(1)
}

func (m *PharmacyRepository) ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Pharmacy), args.Error(1)
}

// OrderRepository is a mock of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *OrderRepository) FindOrdersByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

// CustomerRepository is a mock of repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *CustomerRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)

	return args.Error(0)
}

// CourierRepository is a mock of repository.CourierRepository.
type CourierRepository struct {
	mock.Mock
}

func (m *CourierRepository) FindCourierByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Courier, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Courier), args.Error(1)
}

func (m *CourierRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	args := m.Called(ctx, id, available)

	return args.Error(0)
}

// RepositoryFactory is a mock of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock
}

func (m *RepositoryFactory) NewAddressRepository() repository.AddressRepository {
	args := m.Called()

	return args.Get(0).(repository.AddressRepository)
}

func (m *RepositoryFactory) NewOrderRepository() repository.OrderRepository {
	args := m.Called()

	return args.Get(0).(repository.OrderRepository)
}

// TransactionManager is a mock of repository.TransactionManager. Execute
// runs the unit of work against the configured factory so tests observe the
// calls made inside the transaction.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

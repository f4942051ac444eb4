package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pharmadrop/internal/domain/service"
)

// Geocoder is a mock of service.Geocoder.
type Geocoder struct {
	mock.Mock
}

func (m *Geocoder) Geocode(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error) {
	args := m.Called(ctx, components)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.GeocodeResult), args.Error(1)
}

// PrescriptionStorage is a mock of service.PrescriptionStorage.
type PrescriptionStorage struct {
	mock.Mock
}

func (m *PrescriptionStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, objectName, data, contentType)

	return args.String(0), args.Error(1)
}

func (m *PrescriptionStorage) Fetch(ctx context.Context, objectPath string) ([]byte, string, error) {
	args := m.Called(ctx, objectPath)

	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}

	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *PrescriptionStorage) Delete(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)

	return args.Error(0)
}

// EventPublisher is a mock of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// PushSender is a mock of service.PushSender.
type PushSender struct {
	mock.Mock
}

func (m *PushSender) SendNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)

	return args.Error(0)
}

// QRCodeService is a mock of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (m *QRCodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *QRCodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

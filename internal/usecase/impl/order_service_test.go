package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/mocks"
	"pharmadrop/internal/usecase"
)

type orderServiceFixture struct {
	orders     *mocks.OrderRepository
	addresses  *mocks.AddressRepository
	pharmacies *mocks.PharmacyRepository
	storage    *mocks.PrescriptionStorage
	publisher  *mocks.EventPublisher
	qrcodes    *mocks.QRCodeService
	svc        *orderService
}

func newOrderServiceFixture(now time.Time) *orderServiceFixture {
	f := &orderServiceFixture{
		orders:     new(mocks.OrderRepository),
		addresses:  new(mocks.AddressRepository),
		pharmacies: new(mocks.PharmacyRepository),
		storage:    new(mocks.PrescriptionStorage),
		publisher:  new(mocks.EventPublisher),
		qrcodes:    new(mocks.QRCodeService),
	}
	f.svc = &orderService{
		orders:     f.orders,
		addresses:  f.addresses,
		pharmacies: f.pharmacies,
		storage:    f.storage,
		publisher:  f.publisher,
		qrcodes:    f.qrcodes,
		logger:     slog.New(slog.DiscardHandler),
		now:        func() time.Time { return now },
	}

	return f
}

func (f *orderServiceFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.addresses.AssertExpectations(t)
	f.pharmacies.AssertExpectations(t)
	f.storage.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.qrcodes.AssertExpectations(t)
}

func TestNormalizePrescriptionNo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RX-2024-001", NormalizePrescriptionNo("  rx-2024-001 "))
	assert.Equal(t, "", NormalizePrescriptionNo("   "))
}

func TestPlaceOrder_ValidationBeforeSideEffects(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.PlaceOrderInput
		want  error
	}{
		{
			name:  "missing address",
			input: &usecase.PlaceOrderInput{PharmacyID: uuid.New(), PrescriptionNo: "RX1"},
			want:  domainerrors.ErrAddressRequired,
		},
		{
			name:  "missing pharmacy",
			input: &usecase.PlaceOrderInput{AddressID: uuid.New(), PrescriptionNo: "RX1"},
			want:  domainerrors.ErrPharmacyRequired,
		},
		{
			name:  "no prescription number and no image",
			input: &usecase.PlaceOrderInput{AddressID: uuid.New(), PharmacyID: uuid.New(), PrescriptionNo: "   "},
			want:  domainerrors.ErrPrescriptionMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newOrderServiceFixture(time.Now())

			order, err := f.svc.PlaceOrder(context.Background(), customerID, tt.input)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.want)

			// Nothing may be uploaded, inserted or published for an
			// invalid submission.
			f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestPlaceOrder_WithImage(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	addressID := uuid.New()
	pharmacyID := uuid.New()
	now := time.UnixMilli(1717000000000)

	f := newOrderServiceFixture(now)
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, Name: "Central Pharmacy"}, nil)

	wantObjectName := fmt.Sprintf("%s_%d.jpg", customerID, now.UnixMilli())
	f.storage.On("Upload", mock.Anything, wantObjectName, []byte("photo"), "image/jpeg").
		Return("prescriptions/"+wantObjectName, nil).Once()

	f.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
		return o.CustomerID == customerID &&
			o.PrescriptionNo == "RX-99" &&
			o.PrescriptionImagePath == "prescriptions/"+wantObjectName &&
			o.Status == entity.OrderStatusPending
	})).Return(nil).Once()

	f.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventCreated &&
			e.PharmacyName == "Central Pharmacy" &&
			e.Status == string(entity.OrderStatusPending)
	})).Return(nil).Once()

	order, err := f.svc.PlaceOrder(context.Background(), customerID, &usecase.PlaceOrderInput{
		AddressID:      addressID,
		PharmacyID:     pharmacyID,
		PrescriptionNo: " rx-99 ",
		Note:           "  ring the bell  ",
		Image:          &usecase.ImageUpload{Data: []byte("photo"), Ext: "jpg", ContentType: "image/jpeg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "RX-99", order.PrescriptionNo)
	assert.Equal(t, "ring the bell", order.Note)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	f.assertExpectations(t)
}

func TestPlaceOrder_ForeignAddressRejected(t *testing.T) {
	t.Parallel()

	addressID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: uuid.New()}, nil)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		AddressID:      addressID,
		PharmacyID:     uuid.New(),
		PrescriptionNo: "RX1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_UploadFailureAbortsInsert(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	addressID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	f.storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, err := f.svc.PlaceOrder(context.Background(), customerID, &usecase.PlaceOrderInput{
		AddressID:  addressID,
		PharmacyID: pharmacyID,
		Image:      &usecase.ImageUpload{Data: []byte("photo"), Ext: "jpg", ContentType: "image/jpeg"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_InsertFailureKeepsUpload(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	addressID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	f.storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("prescriptions/x.jpg", nil)
	f.orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	_, err := f.svc.PlaceOrder(context.Background(), customerID, &usecase.PlaceOrderInput{
		AddressID:  addressID,
		PharmacyID: pharmacyID,
		Image:      &usecase.ImageUpload{Data: []byte("photo"), Ext: "jpg", ContentType: "image/jpeg"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderCreationFailed)

	// The stored image stays; cleanup is out of band.
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestPlaceOrder_PublishFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	addressID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.addresses.On("FindAddressByID", mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID}, nil)
	f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	order, err := f.svc.PlaceOrder(context.Background(), customerID, &usecase.PlaceOrderInput{
		AddressID:      addressID,
		PharmacyID:     pharmacyID,
		PrescriptionNo: "RX1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestApproveOrder(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, Status: entity.OrderStatusPending}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID, Name: "Central Pharmacy"}, nil)
	f.orders.On("UpdateOrderStatus", mock.Anything, orderID, entity.OrderStatusApproved).Return(nil).Once()
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventStatusChanged && e.Status == string(entity.OrderStatusApproved)
	})).Return(nil).Once()

	order, err := f.svc.ApproveOrder(context.Background(), ownerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, order.Status)
	f.assertExpectations(t)
}

func TestRejectOrder_WrongOwner(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, Status: entity.OrderStatusPending}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: uuid.New()}, nil)

	_, err := f.svc.RejectOrder(context.Background(), uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveOrder_AlreadyDecided(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, Status: entity.OrderStatusRejected}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)

	_, err := f.svc.ApproveOrder(context.Background(), ownerID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPharmacyOrders(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.pharmacies.On("FindPharmacyByOwner", mock.Anything, ownerID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)
	f.orders.On("FindOrdersByPharmacy", mock.Anything, pharmacyID).
		Return([]*entity.Order{{ID: uuid.New(), PharmacyID: pharmacyID}}, nil)

	orders, err := f.svc.ListPharmacyOrders(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestPickupQR_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: uuid.New()}, nil)

	_, err := f.svc.PickupQR(context.Background(), uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	f.qrcodes.AssertNotCalled(t, "GeneratePickupQR", mock.Anything)
}

func TestPickupQR(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	orderID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: customerID}, nil)
	f.qrcodes.On("GeneratePickupQR", orderID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.svc.PickupQR(context.Background(), customerID, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestListCustomerOrders_RepositoryError(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrdersByCustomer", mock.Anything, customerID).
		Return(nil, errors.New("connection reset"))

	_, err := f.svc.ListCustomerOrders(context.Background(), customerID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
}

func TestPlaceOrder_MissingOrderStoreRowMapsNotFound(t *testing.T) {
	t.Parallel()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, mock.Anything).
		Return(nil, repository.ErrOrderNotFound)

	_, err := f.svc.ApproveOrder(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestApproveOrder_PharmacyRowGoneMapsNotFound(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, Status: entity.OrderStatusPending}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(nil, repository.ErrPharmacyNotFound)

	_, err := f.svc.ApproveOrder(context.Background(), uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.NotEqual(t, "DATABASE_ERROR", appErr.ErrorCode())
}

func TestRejectOrder_DeletesPrescriptionImage(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()
	imagePath := "prescriptions/abc_123.jpg"

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{
			ID:                    orderID,
			PharmacyID:            pharmacyID,
			PrescriptionImagePath: imagePath,
			Status:                entity.OrderStatusPending,
		}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID, Name: "Central Pharmacy"}, nil)
	f.orders.On("UpdateOrderStatus", mock.Anything, orderID, entity.OrderStatusRejected).Return(nil).Once()
	f.storage.On("Delete", mock.Anything, imagePath).Return(nil).Once()
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

	order, err := f.svc.RejectOrder(context.Background(), ownerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejected, order.Status)
	f.assertExpectations(t)
}

func TestRejectOrder_ImageDeleteFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{
			ID:                    orderID,
			PharmacyID:            pharmacyID,
			PrescriptionImagePath: "prescriptions/abc_123.jpg",
			Status:                entity.OrderStatusPending,
		}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)
	f.orders.On("UpdateOrderStatus", mock.Anything, orderID, entity.OrderStatusRejected).Return(nil)
	f.storage.On("Delete", mock.Anything, mock.Anything).Return(errors.New("object store down"))
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	order, err := f.svc.RejectOrder(context.Background(), ownerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejected, order.Status)
}

func TestApproveOrder_KeepsPrescriptionImage(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{
			ID:                    orderID,
			PharmacyID:            pharmacyID,
			PrescriptionImagePath: "prescriptions/abc_123.jpg",
			Status:                entity.OrderStatusPending,
		}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)
	f.orders.On("UpdateOrderStatus", mock.Anything, orderID, entity.OrderStatusApproved).Return(nil)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.ApproveOrder(context.Background(), ownerID, orderID)
	require.NoError(t, err)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPrescriptionImage(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()
	imagePath := "prescriptions/abc_123.jpg"

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, PrescriptionImagePath: imagePath}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)
	f.storage.On("Fetch", mock.Anything, imagePath).
		Return([]byte{0xFF, 0xD8, 0xFF}, "image/jpeg", nil)

	data, contentType, err := f.svc.PrescriptionImage(context.Background(), ownerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestPrescriptionImage_WrongOwner(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, PrescriptionImagePath: "a.jpg"}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: uuid.New()}, nil)

	_, _, err := f.svc.PrescriptionImage(context.Background(), uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.storage.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestPrescriptionImage_NoImageAttached(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)

	_, _, err := f.svc.PrescriptionImage(context.Background(), ownerID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrPrescriptionImageNotFound)
}

func TestPrescriptionImage_FetchFailure(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	orderID := uuid.New()
	pharmacyID := uuid.New()

	f := newOrderServiceFixture(time.Now())
	f.orders.On("FindOrderByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, PharmacyID: pharmacyID, PrescriptionImagePath: "a.jpg"}, nil)
	f.pharmacies.On("FindPharmacyByID", mock.Anything, pharmacyID).
		Return(&entity.Pharmacy{ID: pharmacyID, OwnerID: ownerID}, nil)
	f.storage.On("Fetch", mock.Anything, "a.jpg").
		Return(nil, "", errors.New("object store down"))

	_, _, err := f.svc.PrescriptionImage(context.Background(), ownerID, orderID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMAGE_FETCH_FAILED", appErr.ErrorCode())
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliveryctx "pharmadrop/internal/delivery/context"
	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/errors"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	orders     repository.OrderRepository
	addresses  repository.AddressRepository
	pharmacies repository.PharmacyRepository
	storage    service.PrescriptionStorage
	publisher  service.EventPublisher
	qrcodes    service.QRCodeService
	logger     *slog.Logger
	now        func() time.Time
}

// NewOrderService creates the order use case.
func NewOrderService(
	orders repository.OrderRepository,
	addresses repository.AddressRepository,
	pharmacies repository.PharmacyRepository,
	storage service.PrescriptionStorage,
	publisher service.EventPublisher,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:     orders,
		addresses:  addresses,
		pharmacies: pharmacies,
		storage:    storage,
		publisher:  publisher,
		qrcodes:    qrcodes,
		logger:     logger,
		now:        time.Now,
	}
}

// NormalizePrescriptionNo trims surrounding whitespace and uppercases the
// prescription number so lookups are case-insensitive.
func NormalizePrescriptionNo(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// PlaceOrder validates the submission, uploads the optional prescription
// image and inserts exactly one pending order. Validation runs before any
// collaborator is touched so an invalid submission causes no side effects.
func (s *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.AddressID == uuid.Nil {
		return nil, domainerrors.ErrAddressRequired
	}
	if input.PharmacyID == uuid.Nil {
		return nil, domainerrors.ErrPharmacyRequired
	}

	prescriptionNo := NormalizePrescriptionNo(input.PrescriptionNo)
	if prescriptionNo == "" && input.Image == nil {
		return nil, domainerrors.ErrPrescriptionMissing
	}

	address, err := s.addresses.FindAddressByID(ctx, input.AddressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load delivery address")
	}
	// A foreign address is indistinguishable from a missing one.
	if address.CustomerID != customerID {
		return nil, domainerrors.ErrAddressNotFound
	}

	pharmacy, err := s.pharmacies.FindPharmacyByID(ctx, input.PharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load pharmacy")
	}

	var imagePath string
	if input.Image != nil {
		objectName := fmt.Sprintf("%s_%d.%s", customerID, s.now().UnixMilli(), input.Image.Ext)

		imagePath, err = s.storage.Upload(ctx, objectName, input.Image.Data, input.Image.ContentType)
		if err != nil {
			s.logger.Error("prescription image upload failed",
				slog.String("customer_id", customerID.String()),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
		}
	}

	order := &entity.Order{
		ID:                    uuid.New(),
		CustomerID:            customerID,
		AddressID:             input.AddressID,
		PharmacyID:            input.PharmacyID,
		PrescriptionNo:        prescriptionNo,
		PrescriptionImagePath: imagePath,
		Note:                  strings.TrimSpace(input.Note),
		Status:                entity.OrderStatusPending,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		// The uploaded image is intentionally left in place; placement is
		// not retried automatically and orphans are reaped out of band.
		return nil, domainerrors.ErrOrderCreationFailed.WithDetails(err.Error())
	}

	s.publishEvent(ctx, service.OrderEventCreated, order, pharmacy.Name)

	return order, nil
}

func (s *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orders.FindOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

func (s *orderService) ListPharmacyOrders(ctx context.Context, pharmacyOwnerID uuid.UUID) ([]*entity.Order, error) {
	pharmacy, err := s.pharmacies.FindPharmacyByOwner(ctx, pharmacyOwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load pharmacy")
	}

	orders, err := s.orders.FindOrdersByPharmacy(ctx, pharmacy.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

func (s *orderService) ApproveOrder(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, pharmacyOwnerID, orderID, entity.OrderStatusApproved)
}

func (s *orderService) RejectOrder(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, pharmacyOwnerID, orderID, entity.OrderStatusRejected)
}

// transition moves a pending order to the target status. Only the owner of
// the assigned pharmacy may act, and only once.
func (s *orderService) transition(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load order")
	}

	pharmacy, err := s.pharmacies.FindPharmacyByID(ctx, order.PharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load pharmacy")
	}
	if pharmacy.OwnerID != pharmacyOwnerID {
		return nil, domainerrors.ErrForbidden
	}

	if order.Status != entity.OrderStatusPending {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, target); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}
	order.Status = target

	// A rejected order no longer needs its prescription photo. Removal is
	// best effort; the rejection already happened.
	if target == entity.OrderStatusRejected && order.PrescriptionImagePath != "" {
		if err := s.storage.Delete(ctx, order.PrescriptionImagePath); err != nil {
			s.logger.Warn("failed to delete prescription image of rejected order",
				slog.String("order_id", order.ID.String()),
				slog.String("path", order.PrescriptionImagePath),
				slog.Any("error", err),
			)
		}
	}

	s.publishEvent(ctx, service.OrderEventStatusChanged, order, pharmacy.Name)

	return order, nil
}

// PrescriptionImage serves the stored prescription photo to the owner of the
// assigned pharmacy.
func (s *orderService) PrescriptionImage(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) ([]byte, string, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, "", domainerrors.ErrOrderNotFound
		}

		return nil, "", domainerrors.NewDatabaseExecuteError(err, "failed to load order")
	}

	pharmacy, err := s.pharmacies.FindPharmacyByID(ctx, order.PharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, "", domainerrors.ErrPharmacyNotFound
		}

		return nil, "", domainerrors.NewDatabaseExecuteError(err, "failed to load pharmacy")
	}
	if pharmacy.OwnerID != pharmacyOwnerID {
		return nil, "", domainerrors.ErrForbidden
	}

	if order.PrescriptionImagePath == "" {
		return nil, "", domainerrors.ErrPrescriptionImageNotFound
	}

	data, contentType, err := s.storage.Fetch(ctx, order.PrescriptionImagePath)
	if err != nil {
		s.logger.Error("prescription image fetch failed",
			slog.String("order_id", order.ID.String()),
			slog.String("path", order.PrescriptionImagePath),
			slog.Any("error", err),
		)

		return nil, "", domainerrors.ErrImageFetchFailed.WithDetails(err.Error())
	}

	return data, contentType, nil
}

func (s *orderService) PickupQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load order")
	}
	if order.CustomerID != customerID {
		return nil, domainerrors.ErrOrderNotFound
	}

	png, err := s.qrcodes.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate pickup qr")
	}

	return png, nil
}

// publishEvent pushes an order event best effort. Publish failures never
// fail the customer-facing operation.
func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order, pharmacyName string) {
	event := &service.OrderEvent{
		RequestID:    deliveryctx.GetRequestIDFromContext(ctx),
		Type:         eventType,
		OrderID:      order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		PharmacyID:   order.PharmacyID.String(),
		PharmacyName: pharmacyName,
		Status:       string(order.Status),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

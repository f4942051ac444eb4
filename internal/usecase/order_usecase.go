// Package usecase defines the application use-case interfaces and their
// input types.
package usecase

import (
	"context"

	"pharmadrop/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageUpload is a prescription photo handed in with an order.
type ImageUpload struct {
	Data        []byte
	Ext         string // File extension without the dot, e.g. "jpg".
	ContentType string
}

// PlaceOrderInput represents the input for placing a prescription order.
type PlaceOrderInput struct {
	AddressID      uuid.UUID
	PharmacyID     uuid.UUID
	PrescriptionNo string       // Raw user input; normalized by the use case.
	Note           string       // Raw user input; trimmed by the use case.
	Image          *ImageUpload // Optional prescription photo.
}

// OrderUsecase defines the interface for order placement and the pharmacy
// status actions.
type OrderUsecase interface {
	// PlaceOrder validates the input, uploads the optional prescription
	// image and inserts a single pending order row.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// ListCustomerOrders retrieves the customer's orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListPharmacyOrders retrieves the orders assigned to a pharmacy
	// operated by the given user, newest first.
	ListPharmacyOrders(ctx context.Context, pharmacyOwnerID uuid.UUID) ([]*entity.Order, error)

	// ApproveOrder moves a pending order to approved. Only the assigned
	// pharmacy may do this.
	ApproveOrder(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) (*entity.Order, error)

	// RejectOrder moves a pending order to rejected. Only the assigned
	// pharmacy may do this. The stored prescription image, if any, is
	// removed best effort.
	RejectOrder(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) (*entity.Order, error)

	// PrescriptionImage retrieves the prescription photo attached to an
	// order, for the owner of the assigned pharmacy. It returns the image
	// bytes and their content type.
	PrescriptionImage(ctx context.Context, pharmacyOwnerID, orderID uuid.UUID) ([]byte, string, error)

	// PickupQR renders the pickup QR code PNG for one of the customer's orders.
	PickupQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)
}

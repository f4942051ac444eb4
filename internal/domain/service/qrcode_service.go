package service

import "github.com/google/uuid"

// QRCodeService generates and parses order pickup QR codes. The PNG is shown
// by the customer and scanned by the courier at handoff.
type QRCodeService interface {
	// GeneratePickupQR generates a QR code PNG carrying the order ID.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses scanned QR data and returns the order ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a prescription order.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	}

	return false
}

// Order references exactly one customer, one delivery address and one
// pharmacy. It carries a prescription number and/or an uploaded prescription
// image; at least one of the two must be present at creation. Orders are
// immutable after creation except for the status, which only the pharmacy
// moves (pending -> approved or pending -> rejected).
type Order struct {
	ID                    uuid.UUID
	CustomerID            uuid.UUID
	AddressID             uuid.UUID
	PharmacyID            uuid.UUID
	PrescriptionNo        string // Normalized: trimmed and uppercased. May be empty.
	PrescriptionImagePath string // Object-store path of the uploaded image. May be empty.
	Note                  string
	Status                OrderStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasPrescription reports whether the order carries a prescription number
// or an uploaded image.
func (o *Order) HasPrescription() bool {
	return o.PrescriptionNo != "" || o.PrescriptionImagePath != ""
}

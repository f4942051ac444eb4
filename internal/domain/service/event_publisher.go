package service

import (
	"context"
)

// Order event types published on the order topic.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is the payload published when an order is created or its
// status changes. The push worker turns status changes into customer pushes.
type OrderEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Type         string `json:"type"`
	OrderID      string `json:"order_id"`
	CustomerID   string `json:"customer_id"`
	PharmacyID   string `json:"pharmacy_id"`
	PharmacyName string `json:"pharmacy_name,omitempty"`
	Status       string `json:"status"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue for async processing.
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

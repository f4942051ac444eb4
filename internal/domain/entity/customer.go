// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an end user placing prescription orders.
// Authentication itself is delegated to the external identity provider;
// this entity only mirrors the profile row the provider maintains.
type Customer struct {
	ID        uuid.UUID // The unique identifier, shared with the identity provider.
	Email     string
	Phone     string
	FullName  string
	Roles     []string // e.g. "customer", "courier", "pharmacy".
	PushToken string   // FCM device token, empty when push is not registered.
	CreatedAt time.Time
	UpdatedAt time.Time
}

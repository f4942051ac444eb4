package repository

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/errors"

	"github.com/google/uuid"
)

// ErrPharmacyNotFound is returned when a pharmacy is not found.
var ErrPharmacyNotFound = errors.New("pharmacy not found")

// PharmacyRepository defines the interface for pharmacy-directory reads.
// Pharmacy records are created by the signup flow, outside this service.
type PharmacyRepository interface {
	// FindPharmacyByID retrieves a pharmacy by its unique ID.
	FindPharmacyByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)

	// FindPharmacyByOwner retrieves the pharmacy operated by the given user.
	FindPharmacyByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pharmacy, error)

	// ListPharmacies retrieves every pharmacy ordered by name ascending.
	ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error)
}

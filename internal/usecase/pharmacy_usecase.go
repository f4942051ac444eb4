package usecase

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/geo"

	"github.com/google/uuid"
)

// PharmacyUsecase defines the interface for the pharmacy directory reads
// used by the order flow.
type PharmacyUsecase interface {
	// ListPharmacies retrieves the full directory ordered by name.
	ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error)

	// NearbyPharmacies ranks the directory by distance from one of the
	// customer's addresses. Pharmacies without coordinates rank last; when
	// the address itself has no coordinates, every distance is unknown and
	// the directory order is kept.
	NearbyPharmacies(ctx context.Context, customerID, addressID uuid.UUID) ([]geo.Candidate, error)
}

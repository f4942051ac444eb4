package impl

import (
	"context"

	"pharmadrop/internal/domain/entity"
	domainerrors "pharmadrop/internal/domain/errors"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/errors"
	"pharmadrop/internal/geo"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type pharmacyService struct {
	pharmacies repository.PharmacyRepository
	addresses  repository.AddressRepository
}

// NewPharmacyService creates the pharmacy directory use case.
func NewPharmacyService(
	pharmacies repository.PharmacyRepository,
	addresses repository.AddressRepository,
) usecase.PharmacyUsecase {
	return &pharmacyService{
		pharmacies: pharmacies,
		addresses:  addresses,
	}
}

func (s *pharmacyService) ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error) {
	pharmacies, err := s.pharmacies.ListPharmacies(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pharmacies")
	}

	return pharmacies, nil
}

// NearbyPharmacies ranks the directory around one of the customer's saved
// addresses. An address without coordinates still returns the full list,
// just without distances, so the customer can pick a pharmacy manually.
func (s *pharmacyService) NearbyPharmacies(ctx context.Context, customerID, addressID uuid.UUID) ([]geo.Candidate, error) {
	address, err := s.addresses.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load address")
	}
	if address.CustomerID != customerID {
		return nil, domainerrors.ErrAddressNotFound
	}

	pharmacies, err := s.pharmacies.ListPharmacies(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pharmacies")
	}

	var ref *orb.Point
	if point, ok := address.Location(); ok {
		ref = &point
	}

	return geo.Rank(ref, pharmacies), nil
}

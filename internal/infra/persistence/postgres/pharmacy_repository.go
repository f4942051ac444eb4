package postgres

import (
	"context"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pharmacyRepository implements the repository.PharmacyRepository interface.
type pharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *gorm.DB) repository.PharmacyRepository {
	return &pharmacyRepository{
		db: db,
	}
}

// FindPharmacyByID retrieves a pharmacy by its unique ID.
func (repo *pharmacyRepository) FindPharmacyByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by ID")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// FindPharmacyByOwner retrieves the pharmacy operated by the given user.
func (repo *pharmacyRepository) FindPharmacyByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by owner")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// ListPharmacies retrieves every pharmacy ordered by name ascending.
func (repo *pharmacyRepository) ListPharmacies(ctx context.Context) ([]*entity.Pharmacy, error) {
	var pharmacyModels []*model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&pharmacyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyModels))
	for _, pharmacyM := range pharmacyModels {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, nil
}

// --- Mapper Functions ---

// toPharmacyDomain converts a GORM PharmacyModel to a domain Pharmacy entity.
func toPharmacyDomain(data *model.PharmacyModel) *entity.Pharmacy {
	if data == nil {
		return nil
	}

	return &entity.Pharmacy{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Phone:        data.Phone,
		City:         data.City,
		District:     data.District,
		Neighborhood: data.Neighborhood,
		Street:       data.Street,
		BuildingNo:   data.BuildingNo,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

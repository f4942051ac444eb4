package impl

import (
	"testing"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedCandidates(ref orb.Point, distancesKm ...float64) ([]geo.Candidate, []uuid.UUID) {
	pharmacies := make([]*entity.Pharmacy, 0, len(distancesKm))
	ids := make([]uuid.UUID, 0, len(distancesKm))

	for _, km := range distancesKm {
		lat := ref.Lat() + km/(6371.0*3.141592653589793/180)
		lng := ref.Lon()
		p := &entity.Pharmacy{ID: uuid.New(), Latitude: &lat, Longitude: &lng}
		pharmacies = append(pharmacies, p)
		ids = append(ids, p.ID)
	}

	return geo.Rank(&ref, pharmacies), ids
}

func TestPharmacySelector_AutoSelectsNearest(t *testing.T) {
	ref := orb.Point{29.0, 41.0}
	candidates, ids := rankedCandidates(ref, 2.3, 0.4, 5.0)

	selector := NewPharmacySelector()
	selector.Refresh(candidates)

	selected, ok := selector.Selected()
	require.True(t, ok)
	assert.Equal(t, ids[1], selected) // the 0.4 km pharmacy
	assert.Equal(t, SelectionAuto, selector.Mode())
}

func TestPharmacySelector_ManualPickSticksAcrossRefreshes(t *testing.T) {
	ref := orb.Point{29.0, 41.0}
	candidates, ids := rankedCandidates(ref, 0.4, 2.3)

	selector := NewPharmacySelector()
	selector.Refresh(candidates)

	manualPick := ids[1]
	selector.Choose(manualPick)
	assert.Equal(t, SelectionManual, selector.Mode())

	// A changed candidate list must not alter a manual pick.
	changed, _ := rankedCandidates(ref, 0.1, 0.2, 0.3)
	selector.Refresh(changed)

	selected, ok := selector.Selected()
	require.True(t, ok)
	assert.Equal(t, manualPick, selected)
}

func TestPharmacySelector_AddressChangeResetsToAuto(t *testing.T) {
	ref := orb.Point{29.0, 41.0}
	candidates, ids := rankedCandidates(ref, 0.4, 2.3)

	selector := NewPharmacySelector()
	selector.Choose(ids[1])

	selector.SetAddress()
	assert.Equal(t, SelectionAuto, selector.Mode())
	_, ok := selector.Selected()
	assert.False(t, ok)

	selector.Refresh(candidates)
	selected, ok := selector.Selected()
	require.True(t, ok)
	assert.Equal(t, ids[0], selected)
}

func TestPharmacySelector_NoResolvedDistancesMakesNoPick(t *testing.T) {
	candidates := geo.Rank(nil, []*entity.Pharmacy{
		{ID: uuid.New()},
		{ID: uuid.New()},
	})

	selector := NewPharmacySelector()
	selector.Refresh(candidates)

	_, ok := selector.Selected()
	assert.False(t, ok)
}

func TestPharmacySelector_EmptyCandidateListMakesNoPick(t *testing.T) {
	selector := NewPharmacySelector()
	selector.Refresh(nil)

	_, ok := selector.Selected()
	assert.False(t, ok)
}

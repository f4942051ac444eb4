package impl

import (
	"pharmadrop/internal/geo"

	"github.com/google/uuid"
)

// SelectionMode is the state of the pharmacy auto-selection machine.
type SelectionMode string

const (
	// SelectionAuto lets the ranker drive the selected pharmacy.
	SelectionAuto SelectionMode = "auto"
	// SelectionManual pins the user's own pick until the address changes.
	SelectionManual SelectionMode = "manual"
)

// PharmacySelector is the explicit two-state machine behind pharmacy
// selection in the order form. In auto mode every Refresh re-selects the
// nearest ranked candidate; a manual pick pins the selection, and the only
// transition back to auto is a change of the delivery address.
type PharmacySelector struct {
	mode     SelectionMode
	selected uuid.UUID
}

// NewPharmacySelector creates a selector in auto mode with no selection.
func NewPharmacySelector() *PharmacySelector {
	return &PharmacySelector{mode: SelectionAuto}
}

// Mode returns the current selection mode.
func (s *PharmacySelector) Mode() SelectionMode {
	return s.mode
}

// Selected returns the selected pharmacy ID and whether one is selected.
func (s *PharmacySelector) Selected() (uuid.UUID, bool) {
	return s.selected, s.selected != uuid.Nil
}

// Choose records a manual pick and enters manual mode.
func (s *PharmacySelector) Choose(pharmacyID uuid.UUID) {
	s.mode = SelectionManual
	s.selected = pharmacyID
}

// SetAddress signals that the delivery address changed. This is the only
// transition from manual back to auto; the stale selection is dropped so the
// next Refresh can re-rank against the new reference point.
func (s *PharmacySelector) SetAddress() {
	s.mode = SelectionAuto
	s.selected = uuid.Nil
}

// Refresh re-evaluates the selection against a ranked candidate list.
// In manual mode it never changes the pick. In auto mode it selects the
// nearest candidate with a resolved distance; when no candidate has one,
// no automatic selection is made and the user must choose.
func (s *PharmacySelector) Refresh(candidates []geo.Candidate) {
	if s.mode == SelectionManual {
		return
	}

	if len(candidates) == 0 || candidates[0].DistanceKm == nil {
		return
	}

	s.selected = candidates[0].Pharmacy.ID
}

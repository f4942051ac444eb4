package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Pharmacy is a directory entry created out-of-band by the pharmacy signup
// flow. The customer flow treats it as read-only.
type Pharmacy struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID // The user account operating this pharmacy.
	Name         string
	Phone        string
	City         string
	District     string
	Neighborhood string
	Street       string
	BuildingNo   string
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Location returns the pharmacy coordinate as an orb.Point (lon, lat)
// and whether both components are present.
func (p *Pharmacy) Location() (orb.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*p.Longitude, *p.Latitude}, true
}

// Region returns the short "district/city" line shown in pharmacy lists.
func (p *Pharmacy) Region() string {
	switch {
	case p.District != "" && p.City != "":
		return p.District + "/" + p.City
	case p.City != "":
		return p.City
	default:
		return p.District
	}
}

package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// AddressTitle is the label category of a saved delivery address.
type AddressTitle string

const (
	AddressTitleHome  AddressTitle = "home"
	AddressTitleWork  AddressTitle = "work"
	AddressTitleOther AddressTitle = "other"
)

// Valid reports whether the title is one of the known categories.
func (t AddressTitle) Valid() bool {
	switch t {
	case AddressTitleHome, AddressTitleWork, AddressTitleOther:
		return true
	}

	return false
}

// Address is a customer's saved delivery address. Coordinates and the
// formatted text are filled in by the geocoder when resolution succeeds
// and stay nil otherwise; the flow must work without them.
type Address struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Title            AddressTitle
	CustomTitle      string // Free-text override, only meaningful when Title is "other".
	City             string
	District         string
	Neighborhood     string
	Street           string
	BuildingNo       string
	Floor            string
	ApartmentNo      string
	Description      string
	Latitude         *float64
	Longitude        *float64
	FormattedAddress *string
	IsDefault        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DisplayTitle returns the custom title for "other" addresses when set,
// otherwise the category itself.
func (a *Address) DisplayTitle() string {
	if a.Title == AddressTitleOther && a.CustomTitle != "" {
		return a.CustomTitle
	}

	return string(a.Title)
}

// Location returns the resolved coordinate as an orb.Point (lon, lat)
// and whether both components are present.
func (a *Address) Location() (orb.Point, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*a.Longitude, *a.Latitude}, true
}

// DisplayAddress returns the formatted geocoder text when available,
// otherwise a line assembled from the structured components.
func (a *Address) DisplayAddress() string {
	if a.FormattedAddress != nil && *a.FormattedAddress != "" {
		return *a.FormattedAddress
	}

	return strings.TrimSpace(fmt.Sprintf("%s, %s No:%s - %s/%s",
		a.Neighborhood, a.Street, a.BuildingNo, a.District, a.City))
}

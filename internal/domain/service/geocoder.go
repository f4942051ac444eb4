// Package service defines interfaces for external collaborators
// (geocoding, object storage, push delivery, event publishing).
package service

import "context"

// AddressComponents are the structured fields submitted by the address form.
type AddressComponents struct {
	City         string
	District     string
	Neighborhood string
	Street       string
	BuildingNo   string
}

// GeocodeResult is a resolved coordinate with the provider's formatted text.
type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}

// Geocoder resolves structured address components to a coordinate.
//
// A (nil, nil) return means "unresolved": the provider answered but found
// nothing usable, or could not be reached. Callers must treat unresolved as
// a normal outcome and proceed without coordinates, never as a failure.
type Geocoder interface {
	Geocode(ctx context.Context, components AddressComponents) (*GeocodeResult, error)
}

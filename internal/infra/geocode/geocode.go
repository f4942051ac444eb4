// Package geocode implements the geocoding providers behind the
// service.Geocoder interface: Google Maps, Nominatim and a Redis-backed
// cache wrapper.
package geocode

import (
	"strings"

	"pharmadrop/internal/domain/service"
)

// buildQuery flattens the structured components into a single free-text
// query line, most specific part first.
func buildQuery(components service.AddressComponents) string {
	parts := make([]string, 0, 5)
	if components.Street != "" {
		street := components.Street
		if components.BuildingNo != "" {
			street += " " + components.BuildingNo
		}
		parts = append(parts, street)
	}
	if components.Neighborhood != "" {
		parts = append(parts, components.Neighborhood)
	}
	if components.District != "" {
		parts = append(parts, components.District)
	}
	if components.City != "" {
		parts = append(parts, components.City)
	}

	return strings.Join(parts, ", ")
}

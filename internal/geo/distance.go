// Package geo implements the pure distance ranking used to pick the
// nearest pharmacy for a delivery address.
package geo

import (
	"fmt"
	"math"
	"sort"

	"pharmadrop/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Candidate pairs a pharmacy with its distance from the reference point.
// DistanceKm is nil when either endpoint lacks coordinates.
type Candidate struct {
	Pharmacy   *entity.Pharmacy
	DistanceKm *float64
}

// DistanceLabel returns the display string for the candidate's distance,
// or "" when the distance is unknown.
func (c Candidate) DistanceLabel() string {
	if c.DistanceKm == nil {
		return ""
	}

	return FormatDistance(*c.DistanceKm)
}

// Haversine calculates the great circle distance in kilometers between two
// points given as orb.Point (lon, lat).
func Haversine(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Rank pairs every pharmacy with its distance from ref and sorts the result
// ascending by distance. Candidates without coordinates sort after all
// resolved ones; relative input order is preserved for ties and among
// unresolved entries. A nil ref yields all-nil distances in input order.
func Rank(ref *orb.Point, pharmacies []*entity.Pharmacy) []Candidate {
	candidates := make([]Candidate, 0, len(pharmacies))

	for _, pharmacy := range pharmacies {
		candidate := Candidate{Pharmacy: pharmacy}
		if ref != nil {
			if loc, ok := pharmacy.Location(); ok {
				d := Haversine(*ref, loc)
				candidate.DistanceKm = &d
			}
		}
		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].DistanceKm, candidates[j].DistanceKm
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})

	return candidates
}

// FormatDistance renders a distance for display: rounded meters below 1 km,
// kilometers to one decimal from 1 km up.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1f km", km)
}

package usecase

import (
	"context"

	"pharmadrop/internal/domain/service"
)

// GeocodeUsecase resolves structured address components through the
// configured provider chain.
type GeocodeUsecase interface {
	// Resolve returns the first usable result from the provider chain, or
	// (nil, nil) when every provider comes back unresolved. Providers are
	// tried strictly in sequence, one attempt each, never concurrently.
	Resolve(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error)
}

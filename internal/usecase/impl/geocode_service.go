package impl

import (
	"context"
	"log/slog"

	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/usecase"
)

type geocodeService struct {
	providers []service.Geocoder
	logger    *slog.Logger
}

// NewGeocodeService creates a geocode use case that tries the given
// providers strictly in order. The fallback contract: a provider that
// errors, answers empty or is unconfigured yields to the next one; when
// every provider is exhausted the result is unresolved, not an error, and
// the caller proceeds without coordinates.
func NewGeocodeService(logger *slog.Logger, providers ...service.Geocoder) usecase.GeocodeUsecase {
	return &geocodeService{
		providers: providers,
		logger:    logger,
	}
}

// Resolve walks the provider chain sequentially with a single attempt per
// provider. Providers are never tried concurrently so the secondary is only
// billed when the primary actually came back empty.
func (s *geocodeService) Resolve(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error) {
	for _, provider := range s.providers {
		result, err := provider.Geocode(ctx, components)
		if err != nil {
			// Transport and provider failures are non-fatal: fall through
			// to the next provider.
			s.logger.Warn("geocode provider failed",
				slog.String("city", components.City),
				slog.Any("error", err),
			)

			continue
		}
		if result != nil {
			return result, nil
		}
	}

	return nil, nil
}

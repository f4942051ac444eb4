package geocode

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pharmadrop/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

// cachedGeocoder wraps a provider with a Redis result cache. Address
// components rarely change meaning, so resolved coordinates are cached for
// a long TTL and unresolved answers are not cached at all.
type cachedGeocoder struct {
	next   service.Geocoder
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGeocoder wraps next with a Redis cache. A zero TTL disables
// caching and returns next unchanged.
func NewCachedGeocoder(next service.Geocoder, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) service.Geocoder {
	if ttl <= 0 || client == nil {
		return next
	}

	return &cachedGeocoder{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cachedGeocoder) Geocode(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error) {
	key := cacheKey(components)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		var result service.GeocodeResult
		if unmarshalErr := json.Unmarshal([]byte(cached), &result); unmarshalErr == nil {
			return &result, nil
		}
		// A corrupt entry falls through to the provider and gets rewritten.
	} else if err != redis.Nil {
		c.logger.Warn("geocode cache read failed", slog.Any("error", err))
	}

	result, err := c.next.Geocode(ctx, components)
	if err != nil || result == nil {
		return result, err
	}

	payload, err := json.Marshal(result)
	if err == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn("geocode cache write failed", slog.Any("error", setErr))
		}
	}

	return result, nil
}

// cacheKey hashes the lowercased components so equivalent submissions share
// an entry.
func cacheKey(components service.AddressComponents) string {
	normalized := strings.ToLower(strings.Join([]string{
		components.City,
		components.District,
		components.Neighborhood,
		components.Street,
		components.BuildingNo,
	}, "|"))
	sum := sha256.Sum256([]byte(normalized))

	return "geocode:" + hex.EncodeToString(sum[:])
}

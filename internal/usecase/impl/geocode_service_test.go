package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadrop/internal/domain/service"
)

type stubGeocoder struct {
	result *service.GeocodeResult
	err    error
	calls  int
}

func (s *stubGeocoder) Geocode(_ context.Context, _ service.AddressComponents) (*service.GeocodeResult, error) {
	s.calls++

	return s.result, s.err
}

func testComponents() service.AddressComponents {
	return service.AddressComponents{
		City:         "Istanbul",
		District:     "Kadikoy",
		Neighborhood: "Moda",
		Street:       "Bahariye Cd",
		BuildingNo:   "12",
	}
}

func TestGeocodeService_PrimaryResolves(t *testing.T) {
	t.Parallel()

	primary := &stubGeocoder{result: &service.GeocodeResult{Latitude: 40.987, Longitude: 29.036, FormattedAddress: "Bahariye Cd 12, Kadikoy"}}
	secondary := &stubGeocoder{result: &service.GeocodeResult{Latitude: 1, Longitude: 1}}

	svc := NewGeocodeService(slog.New(slog.DiscardHandler), primary, secondary)

	result, err := svc.Resolve(context.Background(), testComponents())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 40.987, result.Latitude, 1e-9)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "secondary must not be tried when the primary resolves")
}

func TestGeocodeService_FallsBackOnError(t *testing.T) {
	t.Parallel()

	primary := &stubGeocoder{err: errors.New("quota exceeded")}
	secondary := &stubGeocoder{result: &service.GeocodeResult{Latitude: 40.99, Longitude: 29.03, FormattedAddress: "Moda, Kadikoy"}}

	svc := NewGeocodeService(slog.New(slog.DiscardHandler), primary, secondary)

	result, err := svc.Resolve(context.Background(), testComponents())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Moda, Kadikoy", result.FormattedAddress)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestGeocodeService_FallsBackOnEmptyAnswer(t *testing.T) {
	t.Parallel()

	primary := &stubGeocoder{}
	secondary := &stubGeocoder{result: &service.GeocodeResult{Latitude: 41, Longitude: 29}}

	svc := NewGeocodeService(slog.New(slog.DiscardHandler), primary, secondary)

	result, err := svc.Resolve(context.Background(), testComponents())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, secondary.calls)
}

func TestGeocodeService_AllProvidersExhausted(t *testing.T) {
	t.Parallel()

	primary := &stubGeocoder{err: errors.New("timeout")}
	secondary := &stubGeocoder{}

	svc := NewGeocodeService(slog.New(slog.DiscardHandler), primary, secondary)

	result, err := svc.Resolve(context.Background(), testComponents())
	require.NoError(t, err, "an exhausted chain is unresolved, not a failure")
	assert.Nil(t, result)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestGeocodeService_SingleAttemptPerProvider(t *testing.T) {
	t.Parallel()

	primary := &stubGeocoder{err: errors.New("unreachable")}

	svc := NewGeocodeService(slog.New(slog.DiscardHandler), primary)

	_, err := svc.Resolve(context.Background(), testComponents())
	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls, "no retries within the chain")
}

package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/errors"
)

const defaultGoogleBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// googleGeocoder resolves addresses through the Google Maps Geocoding API.
type googleGeocoder struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// GoogleOption customizes the Google geocoder.
type GoogleOption func(*googleGeocoder)

// WithGoogleBaseURL overrides the API endpoint. Used by tests.
func WithGoogleBaseURL(baseURL string) GoogleOption {
	return func(g *googleGeocoder) {
		g.baseURL = baseURL
	}
}

// NewGoogleGeocoder creates a Google Maps geocoding provider.
func NewGoogleGeocoder(apiKey string, timeout time.Duration, opts ...GoogleOption) service.Geocoder {
	g := &googleGeocoder{
		client:  &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: defaultGoogleBaseURL,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves the components through the Geocoding API. A ZERO_RESULTS
// answer is unresolved, not an error.
func (g *googleGeocoder) Geocode(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error) {
	if g.apiKey == "" {
		return nil, nil
	}

	query := buildQuery(components)
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("address", query)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build google geocode request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "google geocode request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("google geocode returned status %d", resp.StatusCode)
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode google geocode response")
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, errors.Errorf("google geocode status %s", body.Status)
	}

	if len(body.Results) == 0 {
		return nil, nil
	}

	first := body.Results[0]

	return &service.GeocodeResult{
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
	}, nil
}

package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/errors"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// nominatimGeocoder resolves addresses through a Nominatim instance. It is
// the fallback when the Google provider is unconfigured or finds nothing.
type nominatimGeocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewNominatimGeocoder creates a Nominatim geocoding provider. The user
// agent identifies the service; Nominatim's usage policy rejects requests
// without one.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) service.Geocoder {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}

	return &nominatimGeocoder{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves the components through the search endpoint. An empty
// result set is unresolved, not an error.
func (n *nominatimGeocoder) Geocode(ctx context.Context, components service.AddressComponents) (*service.GeocodeResult, error) {
	query := buildQuery(components)
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build nominatim request")
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode nominatim response")
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse nominatim latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse nominatim longitude")
	}

	return &service.GeocodeResult{
		Latitude:         lat,
		Longitude:        lon,
		FormattedAddress: results[0].DisplayName,
	}, nil
}

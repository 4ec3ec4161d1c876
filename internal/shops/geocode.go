package shops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/buurtmarkt/backend/pkg/logger"
)

// Geocoder resolves a street address to coordinates. A failed lookup yields
// nil coordinates, never an error: shops are stored without coordinates when
// the collaborator is unreachable.
type Geocoder interface {
	Geocode(ctx context.Context, address, city string) (lat, lng *string)
}

// NominatimGeocoder queries a nominatim-compatible search endpoint.
type NominatimGeocoder struct {
	URL    string
	Client *http.Client
}

func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		URL:    baseURL,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, address, city string) (*string, *string) {
	q := url.Values{}
	q.Set("street", address)
	q.Set("city", city)
	q.Set("format", "jsonv2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.URL+"?"+q.Encode(), nil)
	if err != nil {
		logger.Errorf("geocoding %s, %s: %v", address, city, err)
		return nil, nil
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		logger.Errorf("geocoding %s, %s: %v", address, city, err)
		return nil, nil
	}
	defer resp.Body.Close()

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		logger.Errorf("geocoding %s, %s: %v", address, city, err)
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0].Lat, &results[0].Lon
}

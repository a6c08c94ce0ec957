package openmeteo

import (
	"context"
	"errors"
	"net/url"

	"weatherwise/weather-service/internal/providers"
	"weatherwise/weather-service/internal/weather"
)

const searchCount = "5"

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocoder searches place names with the Open-Meteo geocoding API.
type Geocoder struct {
	client *providers.Client
}

func NewGeocoder(client *providers.Client) *Geocoder {
	return &Geocoder{client: client}
}

func (g *Geocoder) Search(ctx context.Context, text string) ([]weather.GeocodeCandidate, error) {
	query := url.Values{}
	query.Set("name", text)
	query.Set("count", searchCount)
	query.Set("language", "en")
	query.Set("format", "json")

	var resp geocodingResponse
	if err := g.client.GetJSON(ctx, "/v1/search", query, &resp); err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	candidates := make([]weather.GeocodeCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, weather.GeocodeCandidate{
			Name:    r.Name,
			Admin1:  r.Admin1,
			Country: r.Country,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
		})
	}
	return candidates, nil
}

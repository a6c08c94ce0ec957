package nominatim

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"weatherwise/weather-service/internal/providers"
)

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Error       string `json:"error"`
}

// ReverseGeocoder names coordinates with OpenStreetMap Nominatim. Nominatim
// rejects requests without a descriptive User-Agent, set on the client.
type ReverseGeocoder struct {
	client *providers.Client
}

func NewReverseGeocoder(client *providers.Client) *ReverseGeocoder {
	return &ReverseGeocoder{client: client}
}

func (r *ReverseGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("zoom", "10")

	var resp reverseResponse
	if err := r.client.GetJSON(ctx, "/reverse", query, &resp); err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	// "Unable to geocode" comes back as a 200 with an error field.
	if resp.Error != "" {
		return "", nil
	}
	if name := strings.TrimSpace(resp.DisplayName); name != "" {
		return name, nil
	}
	return strings.TrimSpace(resp.Name), nil
}

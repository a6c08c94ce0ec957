package zippopotam

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"weatherwise/weather-service/internal/providers"
	"weatherwise/weather-service/internal/weather"
)

var ErrNoPlaces = errors.New("zip code has no places")

type lookupResponse struct {
	PostCode string `json:"post code"`
	Places   []struct {
		PlaceName         string `json:"place name"`
		StateAbbreviation string `json:"state abbreviation"`
		Latitude          string `json:"latitude"`
		Longitude         string `json:"longitude"`
	} `json:"places"`
}

// ZipLookup resolves US ZIP codes through zippopotam.us.
type ZipLookup struct {
	client  *providers.Client
	country string
}

func NewZipLookup(client *providers.Client) *ZipLookup {
	return &ZipLookup{client: client, country: "us"}
}

// Lookup returns the first place for zip. A 404 surfaces as providers.ErrNotFound.
func (z *ZipLookup) Lookup(ctx context.Context, zip string) (weather.ZipPlace, error) {
	var resp lookupResponse
	if err := z.client.GetJSON(ctx, "/"+z.country+"/"+zip, nil, &resp); err != nil {
		return weather.ZipPlace{}, err
	}
	if len(resp.Places) == 0 {
		return weather.ZipPlace{}, fmt.Errorf("%s: %w", zip, ErrNoPlaces)
	}

	place := resp.Places[0]
	lat, err := strconv.ParseFloat(strings.TrimSpace(place.Latitude), 64)
	if err != nil {
		return weather.ZipPlace{}, fmt.Errorf("invalid latitude %q for %s: %w", place.Latitude, zip, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(place.Longitude), 64)
	if err != nil {
		return weather.ZipPlace{}, fmt.Errorf("invalid longitude %q for %s: %w", place.Longitude, zip, err)
	}

	return weather.ZipPlace{Lat: lat, Lon: lon, Name: placeName(place.PlaceName, place.StateAbbreviation, zip)}, nil
}

func placeName(place, state, zip string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(place))
	if state = strings.TrimSpace(state); state != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(state)
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	b.WriteString(zip)
	return b.String()
}

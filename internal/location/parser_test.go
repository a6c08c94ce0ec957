package location_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherwise/weather-service/internal/location"
	"weatherwise/weather-service/internal/weather"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want weather.ParsedLocation
	}{
		{
			name: "five digit zip",
			raw:  "10001",
			want: weather.ParsedLocation{Kind: weather.LocationZip, Raw: "10001", Zip: "10001"},
		},
		{
			name: "zip with surrounding whitespace",
			raw:  "  94103 ",
			want: weather.ParsedLocation{Kind: weather.LocationZip, Raw: "  94103 ", Zip: "94103"},
		},
		{
			name: "coordinates",
			raw:  "40.7128,-74.0060",
			want: weather.ParsedLocation{Kind: weather.LocationLatLon, Raw: "40.7128,-74.0060", Lat: 40.7128, Lon: -74.006},
		},
		{
			name: "coordinates with space and plus sign",
			raw:  "+51.5, -0.12",
			want: weather.ParsedLocation{Kind: weather.LocationLatLon, Raw: "+51.5, -0.12", Lat: 51.5, Lon: -0.12},
		},
		{
			name: "coordinates on the boundary",
			raw:  "-90,180",
			want: weather.ParsedLocation{Kind: weather.LocationLatLon, Raw: "-90,180", Lat: -90, Lon: 180},
		},
		{
			name: "latitude out of range falls back to text",
			raw:  "91,10",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: "91,10", Text: "91,10"},
		},
		{
			name: "longitude out of range falls back to text",
			raw:  "10,-180.5",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: "10,-180.5", Text: "10,-180.5"},
		},
		{
			name: "coordinates without leading digit",
			raw:  ".5,10",
			want: weather.ParsedLocation{Kind: weather.LocationLatLon, Raw: ".5,10", Lat: 0.5, Lon: 10},
		},
		{
			name: "coordinates with exponent",
			raw:  "1e1,20",
			want: weather.ParsedLocation{Kind: weather.LocationLatLon, Raw: "1e1,20", Lat: 10, Lon: 20},
		},
		{
			name: "not a number falls back to text",
			raw:  "NaN,10",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: "NaN,10", Text: "NaN,10"},
		},
		{
			name: "three values is text",
			raw:  "1,2,3",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: "1,2,3", Text: "1,2,3"},
		},
		{
			name: "four digits is text",
			raw:  "1234",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: "1234", Text: "1234"},
		},
		{
			name: "zip plus four is text",
			raw:  "10001-1234",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: "10001-1234", Text: "10001-1234"},
		},
		{
			name: "city name",
			raw:  " Paris ",
			want: weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: " Paris ", Text: "Paris"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := location.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := location.Parse(raw)
		require.Error(t, err)
		assert.True(t, errors.Is(err, weather.ErrInvalidInput), "input %q", raw)
	}
}

func TestCoordinateLabel(t *testing.T) {
	assert.Equal(t, "40.7128,-74.0060", location.CoordinateLabel(40.7128, -74.006))
	assert.Equal(t, "0.0000,0.0000", location.CoordinateLabel(0, 0))
}

package location

import (
	"regexp"
	"strconv"
	"strings"

	"weatherwise/weather-service/internal/weather"
)

var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

// Parse classifies raw user input. It never touches the network.
func Parse(raw string) (weather.ParsedLocation, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return weather.ParsedLocation{}, weather.InvalidInput(raw, "location must not be empty")
	}

	if zipPattern.MatchString(text) {
		return weather.ParsedLocation{Kind: weather.LocationZip, Raw: raw, Zip: text}, nil
	}

	if lat, lon, ok := parseLatLon(text); ok {
		return weather.ParsedLocation{Kind: weather.LocationLatLon, Raw: raw, Lat: lat, Lon: lon}, nil
	}

	return weather.ParsedLocation{Kind: weather.LocationFreeText, Raw: raw, Text: text}, nil
}

// parseLatLon accepts exactly two comma separated floats within bounds.
func parseLatLon(text string) (float64, float64, bool) {
	first, second, found := strings.Cut(text, ",")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(second), 64)
	if err != nil {
		return 0, 0, false
	}
	if !weather.ValidLatLon(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

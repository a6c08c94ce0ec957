package weather

import (
	"strings"
	"time"
)

// ProviderName is stored with every record; all weather data comes from Open-Meteo.
const ProviderName = "open-meteo"

// Provider labels used in error context and logs.
const (
	ProviderGeocode  = "geocoding"
	ProviderReverse  = "reverse geocoding"
	ProviderZip      = "zip lookup"
	ProviderArchive  = "weather archive"
	ProviderForecast = "weather forecast"
)

type LocationKind int

const (
	LocationFreeText LocationKind = iota
	LocationZip
	LocationLatLon
)

func (k LocationKind) String() string {
	switch k {
	case LocationZip:
		return "zip"
	case LocationLatLon:
		return "latlon"
	default:
		return "freetext"
	}
}

// ParsedLocation is a tagged variant: Zip is set for LocationZip, Lat/Lon for
// LocationLatLon and Text for LocationFreeText.
type ParsedLocation struct {
	Kind LocationKind
	Raw  string
	Zip  string
	Lat  float64
	Lon  float64
	Text string
}

type LocationSource string

const (
	SourceGeocodeAPI LocationSource = "geocode_api"
	SourceZipAPI     LocationSource = "zip_api"
	SourceDirect     LocationSource = "direct"
)

type ResolvedLocation struct {
	Lat         float64        `json:"lat"`
	Lon         float64        `json:"lon"`
	DisplayName string         `json:"display_name"`
	Source      LocationSource `json:"source"`
}

type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// Days is the inclusive number of calendar days in the range.
func (r DateRange) Days() int {
	return r.To.DaysSince(r.From) + 1
}

// Dates lists every day of the range in ascending order.
func (r DateRange) Dates() []Date {
	if r.To.Before(r.From) {
		return nil
	}
	out := make([]Date, 0, r.Days())
	for d := r.From; !d.After(r.To); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// DailyWeather is one day of the series. Nil pointers mark values the provider
// reported as missing.
type DailyWeather struct {
	Date          Date     `json:"date"`
	TempMax       *float64 `json:"temp_max"`
	TempMin       *float64 `json:"temp_min"`
	Precipitation *float64 `json:"precipitation"`
	WeatherCode   *int     `json:"weather_code"`
	IsForecast    bool     `json:"is_forecast"`
}

// Record is the persistable result of one pipeline run.
type Record struct {
	ID               uint             `json:"id"`
	LocationInput    string           `json:"location_input"`
	ResolvedLocation ResolvedLocation `json:"resolved_location"`
	DateRange        DateRange        `json:"date_range"`
	DailySeries      []DailyWeather   `json:"daily_series"`
	MissingDates     []Date           `json:"missing_dates,omitempty"`
	Partial          bool             `json:"partial"`
	Provider         string           `json:"provider"`
	Notes            string           `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// GeocodeCandidate is one forward geocoding match, best-ranked first.
type GeocodeCandidate struct {
	Name    string
	Admin1  string
	Country string
	Lat     float64
	Lon     float64
}

func (c GeocodeCandidate) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Name, c.Admin1, c.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type ZipPlace struct {
	Lat  float64
	Lon  float64
	Name string
}

func ValidLatLon(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Series is the aggregated daily weather for a range. Days is strictly
// ascending by date without duplicates; Missing lists requested days that no
// provider returned.
type Series struct {
	Days    []DailyWeather
	Missing []Date
}

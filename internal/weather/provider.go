package weather

import "context"

// GeocodeProvider resolves free text to candidates. Zero matches is not an error.
type GeocodeProvider interface {
	Search(ctx context.Context, text string) ([]GeocodeCandidate, error)
}

// ReverseGeocodeProvider returns a human readable name for coordinates; an
// empty name means nothing was found.
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

type ZipProvider interface {
	Lookup(ctx context.Context, zip string) (ZipPlace, error)
}

// WeatherProvider returns one entry per day it has data for, within [from, to].
type WeatherProvider interface {
	Archive(ctx context.Context, lat, lon float64, from, to Date) ([]DailyWeather, error)
	Forecast(ctx context.Context, lat, lon float64, from, to Date) ([]DailyWeather, error)
}

package aggregator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"weatherwise/weather-service/internal/weather"
)

// Policy decides what happens when a provider returns fewer days than requested.
type Policy string

const (
	// PolicyFail rejects the whole request with PartialDataUnavailable.
	PolicyFail Policy = "fail"
	// PolicyOmit leaves the missing days out and reports them on the series.
	PolicyOmit Policy = "omit"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyFail, PolicyOmit:
		return p, nil
	case "":
		return PolicyFail, nil
	default:
		return "", fmt.Errorf("unknown partial data policy %q", s)
	}
}

// Clock reports the current calendar day at a location.
type Clock interface {
	Today(lat, lon float64) weather.Date
}

type ClockFunc func(lat, lon float64) weather.Date

func (f ClockFunc) Today(lat, lon float64) weather.Date {
	return f(lat, lon)
}

// UTCClock ignores the location and uses the UTC calendar day.
func UTCClock(now func() time.Time) Clock {
	return ClockFunc(func(_, _ float64) weather.Date {
		return weather.DateOf(now().UTC())
	})
}

// DefaultHorizonDays is how many days, today included, the forecast provider serves.
const DefaultHorizonDays = 16

// ArchiveStart is the first day the archive provider has data for.
var ArchiveStart = weather.NewDate(1940, time.January, 1)

type Options struct {
	Policy      Policy
	HorizonDays int
}

type Aggregator struct {
	provider    weather.WeatherProvider
	clock       Clock
	policy      Policy
	horizonDays int
}

func New(provider weather.WeatherProvider, clock Clock, opts Options) *Aggregator {
	if opts.Policy == "" {
		opts.Policy = PolicyFail
	}
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = DefaultHorizonDays
	}
	return &Aggregator{
		provider:    provider,
		clock:       clock,
		policy:      opts.Policy,
		horizonDays: opts.HorizonDays,
	}
}

// Fetch gets archive data for days before today and forecast data for the
// rest, calling each provider only when its partition is non-empty.
func (a *Aggregator) Fetch(ctx context.Context, loc weather.ResolvedLocation, rng weather.DateRange) (weather.Series, error) {
	logger := zerolog.Ctx(ctx)
	today := a.clock.Today(loc.Lat, loc.Lon)
	split := Partition(rng, today)

	var archive, forecast []weather.DailyWeather

	if split.Archive != nil {
		req := *split.Archive
		if req.From.Before(ArchiveStart) {
			req.From = ArchiveStart
		}
		if !req.To.Before(req.From) {
			days, err := a.provider.Archive(ctx, loc.Lat, loc.Lon, req.From, req.To)
			if err != nil {
				return weather.Series{}, upstream(weather.ProviderArchive, err)
			}
			archive = days
		}
	}

	if split.Forecast != nil {
		req := *split.Forecast
		if horizon := today.AddDays(a.horizonDays - 1); req.To.After(horizon) {
			req.To = horizon
		}
		if !req.To.Before(req.From) {
			days, err := a.provider.Forecast(ctx, loc.Lat, loc.Lon, req.From, req.To)
			if err != nil {
				return weather.Series{}, upstream(weather.ProviderForecast, err)
			}
			forecast = days
		}
	}

	series, err := Merge(rng, today, archive, forecast)
	if err != nil {
		return weather.Series{}, err
	}

	if len(series.Missing) > 0 {
		provider := missingProvider(series.Missing, today)
		if a.policy == PolicyFail {
			return weather.Series{}, weather.PartialDataUnavailable(provider, series.Missing)
		}
		logger.Warn().
			Str("provider", provider).
			Int("missing", len(series.Missing)).
			Msg("omitting days the provider did not return")
	}

	return series, nil
}

func upstream(provider string, err error) error {
	if _, ok := weather.AsError(err); ok {
		return err
	}
	return weather.UpstreamUnavailable(provider, err)
}

func missingProvider(missing []weather.Date, today weather.Date) string {
	past, future := false, false
	for _, d := range missing {
		if d.Before(today) {
			past = true
		} else {
			future = true
		}
	}
	switch {
	case past && !future:
		return weather.ProviderArchive
	case future && !past:
		return weather.ProviderForecast
	default:
		return weather.ProviderArchive + ", " + weather.ProviderForecast
	}
}

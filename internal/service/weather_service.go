package service

import (
	"context"

	"github.com/rs/zerolog"

	"weatherwise/weather-service/internal/daterange"
	"weatherwise/weather-service/internal/location"
	"weatherwise/weather-service/internal/weather"
)

type CreateInput struct {
	Location string
	DateFrom string
	DateTo   string
	Notes    string
}

// UpdateInput fields left nil keep the stored value.
type UpdateInput struct {
	Location *string
	DateFrom *string
	DateTo   *string
	Notes    *string
}

func (in UpdateInput) rerunsPipeline() bool {
	return in.Location != nil || in.DateFrom != nil || in.DateTo != nil
}

type LocationResolver interface {
	Resolve(ctx context.Context, parsed weather.ParsedLocation) (weather.ResolvedLocation, error)
}

type WeatherAggregator interface {
	Fetch(ctx context.Context, loc weather.ResolvedLocation, rng weather.DateRange) (weather.Series, error)
}

// WeatherRequestService computes records; persisting them is the caller's job.
type WeatherRequestService interface {
	Create(ctx context.Context, input CreateInput) (weather.Record, error)
	Update(ctx context.Context, stored weather.Record, input UpdateInput) (weather.Record, error)
}

type weatherRequestService struct {
	resolver   LocationResolver
	aggregator WeatherAggregator
}

func NewWeatherRequestService(resolver LocationResolver, aggregator WeatherAggregator) WeatherRequestService {
	return &weatherRequestService{
		resolver:   resolver,
		aggregator: aggregator,
	}
}

func (s *weatherRequestService) Create(ctx context.Context, input CreateInput) (weather.Record, error) {
	record, err := s.run(ctx, input.Location, input.DateFrom, input.DateTo)
	if err != nil {
		return weather.Record{}, err
	}
	record.Notes = input.Notes
	return record, nil
}

// Update recomputes the stored record. Supplying any of location, date_from or
// date_to reruns the whole pipeline and replaces the resolved location and the
// daily series wholesale.
func (s *weatherRequestService) Update(ctx context.Context, stored weather.Record, input UpdateInput) (weather.Record, error) {
	updated := stored

	if input.rerunsPipeline() {
		loc := stored.LocationInput
		if input.Location != nil {
			loc = *input.Location
		}
		from := stored.DateRange.From.String()
		if input.DateFrom != nil {
			from = *input.DateFrom
		}
		to := stored.DateRange.To.String()
		if input.DateTo != nil {
			to = *input.DateTo
		}

		fresh, err := s.run(ctx, loc, from, to)
		if err != nil {
			return weather.Record{}, err
		}

		updated.LocationInput = fresh.LocationInput
		updated.ResolvedLocation = fresh.ResolvedLocation
		updated.DateRange = fresh.DateRange
		updated.DailySeries = fresh.DailySeries
		updated.MissingDates = fresh.MissingDates
		updated.Partial = fresh.Partial
		updated.Provider = fresh.Provider
	}

	if input.Notes != nil {
		updated.Notes = *input.Notes
	}

	return updated, nil
}

// run is parse, validate, resolve, aggregate. The two pure stages go first so
// no provider is called for input that can never succeed.
func (s *weatherRequestService) run(ctx context.Context, rawLocation, from, to string) (weather.Record, error) {
	logger := zerolog.Ctx(ctx).With().Str("location", rawLocation).Logger()

	parsed, err := location.Parse(rawLocation)
	if err != nil {
		return weather.Record{}, err
	}

	rng, err := daterange.Parse(from, to)
	if err != nil {
		return weather.Record{}, err
	}

	resolved, err := s.resolver.Resolve(ctx, parsed)
	if err != nil {
		logger.Info().Err(err).Msg("location resolution failed")
		return weather.Record{}, classify(weather.ProviderGeocode, err)
	}

	series, err := s.aggregator.Fetch(ctx, resolved, rng)
	if err != nil {
		logger.Info().Err(err).Msg("weather aggregation failed")
		return weather.Record{}, classify(weather.ProviderArchive+", "+weather.ProviderForecast, err)
	}

	logger.Debug().
		Str("kind", parsed.Kind.String()).
		Str("display_name", resolved.DisplayName).
		Int("days", len(series.Days)).
		Msg("weather request computed")

	return weather.Record{
		LocationInput:    rawLocation,
		ResolvedLocation: resolved,
		DateRange:        rng,
		DailySeries:      series.Days,
		MissingDates:     series.Missing,
		Partial:          len(series.Missing) > 0,
		Provider:         weather.ProviderName,
	}, nil
}

func classify(provider string, err error) error {
	if _, ok := weather.AsError(err); ok {
		return err
	}
	return weather.UpstreamUnavailable(provider, err)
}

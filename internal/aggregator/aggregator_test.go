package aggregator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"weatherwise/weather-service/internal/aggregator"
	"weatherwise/weather-service/internal/mocks"
	"weatherwise/weather-service/internal/weather"
)

type AggregatorTestSuite struct {
	suite.Suite
	provider *mocks.MockWeatherProvider
	clock    *mocks.MockClock
	loc      weather.ResolvedLocation
	today    weather.Date
	ctx      context.Context
}

func (s *AggregatorTestSuite) SetupTest() {
	s.provider = mocks.NewMockWeatherProvider(s.T())
	s.clock = mocks.NewMockClock(s.T())
	s.loc = weather.ResolvedLocation{Lat: 48.85, Lon: 2.35, DisplayName: "Paris, France", Source: weather.SourceGeocodeAPI}
	s.today = d(time.June, 15)
	s.ctx = context.Background()

	s.clock.On("Today", s.loc.Lat, s.loc.Lon).Return(s.today).Maybe()
}

func (s *AggregatorTestSuite) aggregator(policy aggregator.Policy) *aggregator.Aggregator {
	return aggregator.New(s.provider, s.clock, aggregator.Options{Policy: policy})
}

func daysBetween(from, to weather.Date) []weather.DailyWeather {
	var out []weather.DailyWeather
	for _, date := range (weather.DateRange{From: from, To: to}).Dates() {
		out = append(out, day(date))
	}
	return out
}

func (s *AggregatorTestSuite) TestPastRangeCallsOnlyArchive() {
	from, to := d(time.June, 1), d(time.June, 3)
	s.provider.On("Archive", mock.Anything, s.loc.Lat, s.loc.Lon, from, to).Return(daysBetween(from, to), nil).Once()

	series, err := s.aggregator(aggregator.PolicyFail).Fetch(s.ctx, s.loc, weather.DateRange{From: from, To: to})

	s.NoError(err)
	s.Len(series.Days, 3)
	s.provider.AssertNotCalled(s.T(), "Forecast", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	for _, dw := range series.Days {
		s.False(dw.IsForecast)
	}
}

func (s *AggregatorTestSuite) TestFutureRangeCallsOnlyForecast() {
	from, to := d(time.June, 15), d(time.June, 20)
	s.provider.On("Forecast", mock.Anything, s.loc.Lat, s.loc.Lon, from, to).Return(daysBetween(from, to), nil).Once()

	series, err := s.aggregator(aggregator.PolicyFail).Fetch(s.ctx, s.loc, weather.DateRange{From: from, To: to})

	s.NoError(err)
	s.Len(series.Days, 6)
	s.provider.AssertNotCalled(s.T(), "Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	for _, dw := range series.Days {
		s.True(dw.IsForecast)
	}
}

func (s *AggregatorTestSuite) TestStraddlingRangeMergesBoth() {
	s.provider.On("Archive", mock.Anything, s.loc.Lat, s.loc.Lon, d(time.June, 12), d(time.June, 14)).
		Return(daysBetween(d(time.June, 12), d(time.June, 14)), nil).Once()
	s.provider.On("Forecast", mock.Anything, s.loc.Lat, s.loc.Lon, d(time.June, 15), d(time.June, 18)).
		Return(daysBetween(d(time.June, 15), d(time.June, 18)), nil).Once()

	rng := weather.DateRange{From: d(time.June, 12), To: d(time.June, 18)}
	series, err := s.aggregator(aggregator.PolicyFail).Fetch(s.ctx, s.loc, rng)

	s.NoError(err)
	s.Require().Len(series.Days, 7)
	for i, want := range rng.Dates() {
		s.Equal(want, series.Days[i].Date)
		s.Equal(!want.Before(s.today), series.Days[i].IsForecast)
	}
	s.Empty(series.Missing)
}

func (s *AggregatorTestSuite) TestArchiveFailureIsUpstreamUnavailable() {
	s.provider.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("503 Service Unavailable")).Once()

	_, err := s.aggregator(aggregator.PolicyFail).Fetch(s.ctx, s.loc, weather.DateRange{From: d(time.June, 1), To: d(time.June, 2)})

	s.True(errors.Is(err, weather.ErrUpstreamUnavailable))
	werr, ok := weather.AsError(err)
	s.Require().True(ok)
	s.Equal(weather.ProviderArchive, werr.Provider)
}

func (s *AggregatorTestSuite) TestForecastFailureIsUpstreamUnavailable() {
	s.provider.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(daysBetween(d(time.June, 14), d(time.June, 14)), nil).Once()
	s.provider.On("Forecast", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	_, err := s.aggregator(aggregator.PolicyFail).Fetch(s.ctx, s.loc, weather.DateRange{From: d(time.June, 14), To: d(time.June, 15)})

	werr, ok := weather.AsError(err)
	s.Require().True(ok)
	s.Equal(weather.ErrUpstreamUnavailable, werr.Kind)
	s.Equal(weather.ProviderForecast, werr.Provider)
}

func (s *AggregatorTestSuite) TestFailPolicyRejectsMissingDays() {
	from, to := d(time.June, 1), d(time.June, 3)
	s.provider.On("Archive", mock.Anything, mock.Anything, mock.Anything, from, to).
		Return([]weather.DailyWeather{day(from), day(to)}, nil).Once()

	_, err := s.aggregator(aggregator.PolicyFail).Fetch(s.ctx, s.loc, weather.DateRange{From: from, To: to})

	s.True(errors.Is(err, weather.ErrPartialDataUnavailable))
	werr, _ := weather.AsError(err)
	s.Equal([]weather.Date{d(time.June, 2)}, werr.Dates)
	s.Equal(weather.ProviderArchive, werr.Provider)
}

func (s *AggregatorTestSuite) TestOmitPolicyKeepsAvailableDays() {
	from, to := d(time.June, 1), d(time.June, 3)
	s.provider.On("Archive", mock.Anything, mock.Anything, mock.Anything, from, to).
		Return([]weather.DailyWeather{day(from), day(to)}, nil).Once()

	series, err := s.aggregator(aggregator.PolicyOmit).Fetch(s.ctx, s.loc, weather.DateRange{From: from, To: to})

	s.NoError(err)
	s.Len(series.Days, 2)
	s.Equal(from, series.Days[0].Date)
	s.Equal(to, series.Days[1].Date)
	s.Equal([]weather.Date{d(time.June, 2)}, series.Missing)
}

func (s *AggregatorTestSuite) TestForecastClampedToHorizon() {
	agg := aggregator.New(s.provider, s.clock, aggregator.Options{Policy: aggregator.PolicyOmit, HorizonDays: 3})
	from, to := d(time.June, 15), d(time.June, 20)
	horizon := d(time.June, 17)
	s.provider.On("Forecast", mock.Anything, mock.Anything, mock.Anything, from, horizon).
		Return(daysBetween(from, horizon), nil).Once()

	series, err := agg.Fetch(s.ctx, s.loc, weather.DateRange{From: from, To: to})

	s.NoError(err)
	s.Len(series.Days, 3)
	s.Equal([]weather.Date{d(time.June, 18), d(time.June, 19), d(time.June, 20)}, series.Missing)
}

func (s *AggregatorTestSuite) TestRangeBeyondHorizonMakesNoCall() {
	agg := aggregator.New(s.provider, s.clock, aggregator.Options{Policy: aggregator.PolicyFail, HorizonDays: 3})
	rng := weather.DateRange{From: d(time.July, 10), To: d(time.July, 11)}

	_, err := agg.Fetch(s.ctx, s.loc, rng)

	s.True(errors.Is(err, weather.ErrPartialDataUnavailable))
	werr, _ := weather.AsError(err)
	s.Equal(weather.ProviderForecast, werr.Provider)
	s.Equal(rng.Dates(), werr.Dates)
}

func (s *AggregatorTestSuite) TestArchiveClampedToStart() {
	from, to := weather.NewDate(1939, time.December, 30), weather.NewDate(1940, time.January, 2)
	s.provider.On("Archive", mock.Anything, mock.Anything, mock.Anything, aggregator.ArchiveStart, to).
		Return(daysBetween(aggregator.ArchiveStart, to), nil).Once()

	series, err := s.aggregator(aggregator.PolicyOmit).Fetch(s.ctx, s.loc, weather.DateRange{From: from, To: to})

	s.NoError(err)
	s.Len(series.Days, 2)
	s.Len(series.Missing, 2)
}

func TestAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

func TestParsePolicy(t *testing.T) {
	p, err := aggregator.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, aggregator.PolicyFail, p)

	p, err = aggregator.ParsePolicy(" OMIT ")
	require.NoError(t, err)
	assert.Equal(t, aggregator.PolicyOmit, p)

	_, err = aggregator.ParsePolicy("ignore")
	assert.Error(t, err)
}

func TestUTCClock(t *testing.T) {
	now := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	clock := aggregator.UTCClock(func() time.Time { return now })

	assert.Equal(t, weather.NewDate(2024, time.March, 10), clock.Today(40, -74))
}

package location_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"weatherwise/weather-service/internal/inmemorycache"
	"weatherwise/weather-service/internal/location"
	"weatherwise/weather-service/internal/mocks"
	"weatherwise/weather-service/internal/weather"
)

type ResolverTestSuite struct {
	suite.Suite
	geocoder *mocks.MockGeocodeProvider
	reverse  *mocks.MockReverseGeocodeProvider
	zip      *mocks.MockZipProvider
	resolver *location.Resolver
	ctx      context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	s.geocoder = mocks.NewMockGeocodeProvider(s.T())
	s.reverse = mocks.NewMockReverseGeocodeProvider(s.T())
	s.zip = mocks.NewMockZipProvider(s.T())
	s.resolver = location.NewResolver(s.geocoder, s.reverse, s.zip)
	s.ctx = context.Background()
}

func (s *ResolverTestSuite) parse(raw string) weather.ParsedLocation {
	parsed, err := location.Parse(raw)
	s.Require().NoError(err)
	return parsed
}

func (s *ResolverTestSuite) TestFreeTextFirstCandidateWins() {
	s.geocoder.On("Search", mock.Anything, "Paris").Return([]weather.GeocodeCandidate{
		{Name: "Paris", Admin1: "Île-de-France", Country: "France", Lat: 48.8566, Lon: 2.3522},
		{Name: "Paris", Admin1: "Texas", Country: "United States", Lat: 33.66, Lon: -95.55},
	}, nil).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("Paris"))

	s.NoError(err)
	s.Equal(48.8566, loc.Lat)
	s.Equal(2.3522, loc.Lon)
	s.Equal("Paris, Île-de-France, France", loc.DisplayName)
	s.Equal(weather.SourceGeocodeAPI, loc.Source)
}

func (s *ResolverTestSuite) TestFreeTextSkipsInvalidCandidates() {
	s.geocoder.On("Search", mock.Anything, "Springfield").Return([]weather.GeocodeCandidate{
		{Name: "Broken", Lat: 123, Lon: 0},
		{Name: "Springfield", Country: "United States", Lat: 39.8, Lon: -89.64},
	}, nil).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("Springfield"))

	s.NoError(err)
	s.Equal("Springfield, United States", loc.DisplayName)
}

func (s *ResolverTestSuite) TestFreeTextNoMatch() {
	s.geocoder.On("Search", mock.Anything, "Xyzzyplace12345").Return(nil, nil).Once()

	_, err := s.resolver.Resolve(s.ctx, s.parse("Xyzzyplace12345"))

	s.Error(err)
	s.True(errors.Is(err, weather.ErrLocationNotFound))
	werr, ok := weather.AsError(err)
	s.Require().True(ok)
	s.Equal("Xyzzyplace12345", werr.Value)
}

func (s *ResolverTestSuite) TestFreeTextUpstreamFailure() {
	s.geocoder.On("Search", mock.Anything, "Paris").Return(nil, errors.New("connection reset")).Once()

	_, err := s.resolver.Resolve(s.ctx, s.parse("Paris"))

	s.True(errors.Is(err, weather.ErrUpstreamUnavailable))
	s.False(errors.Is(err, weather.ErrLocationNotFound))
}

func (s *ResolverTestSuite) TestZipResolvedByZipProvider() {
	s.zip.On("Lookup", mock.Anything, "10001").Return(weather.ZipPlace{
		Lat: 40.7484, Lon: -73.9967, Name: "New York, NY 10001",
	}, nil).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("10001"))

	s.NoError(err)
	s.Equal(40.7484, loc.Lat)
	s.Equal(-73.9967, loc.Lon)
	s.Equal("New York, NY 10001", loc.DisplayName)
	s.Equal(weather.SourceZipAPI, loc.Source)
}

func (s *ResolverTestSuite) TestZipFallsBackToFreeText() {
	s.zip.On("Lookup", mock.Anything, "75001").Return(weather.ZipPlace{}, errors.New("not found")).Once()
	s.geocoder.On("Search", mock.Anything, "75001").Return([]weather.GeocodeCandidate{
		{Name: "Addison", Admin1: "Texas", Country: "United States", Lat: 32.96, Lon: -96.83},
	}, nil).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("75001"))

	s.NoError(err)
	s.Equal("Addison, Texas, United States", loc.DisplayName)
	s.Equal(weather.SourceGeocodeAPI, loc.Source)
}

func (s *ResolverTestSuite) TestZipBothTiersFail() {
	s.zip.On("Lookup", mock.Anything, "00000").Return(weather.ZipPlace{}, errors.New("not found")).Once()
	s.geocoder.On("Search", mock.Anything, "00000").Return([]weather.GeocodeCandidate{}, nil).Once()

	_, err := s.resolver.Resolve(s.ctx, s.parse("00000"))

	s.True(errors.Is(err, weather.ErrLocationNotFound))
}

func (s *ResolverTestSuite) TestLatLonUsesReverseName() {
	s.reverse.On("Reverse", mock.Anything, 40.7128, -74.006).Return("New York, United States", nil).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("40.7128,-74.0060"))

	s.NoError(err)
	s.Equal(40.7128, loc.Lat)
	s.Equal(-74.006, loc.Lon)
	s.Equal("New York, United States", loc.DisplayName)
	s.Equal(weather.SourceDirect, loc.Source)
}

func (s *ResolverTestSuite) TestLatLonReverseFailureIsNotAnError() {
	s.reverse.On("Reverse", mock.Anything, 40.7128, -74.006).Return("", errors.New("timeout")).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("40.7128,-74.0060"))

	s.NoError(err)
	s.Equal(40.7128, loc.Lat)
	s.Equal(-74.006, loc.Lon)
	s.Equal("40.7128,-74.0060", loc.DisplayName)
	s.Equal(weather.SourceDirect, loc.Source)
}

func (s *ResolverTestSuite) TestLatLonWithoutReverseProvider() {
	resolver := location.NewResolver(s.geocoder, nil, s.zip)

	loc, err := resolver.Resolve(s.ctx, s.parse("-33.8688,151.2093"))

	s.NoError(err)
	s.Equal("-33.8688,151.2093", loc.DisplayName)
}

func (s *ResolverTestSuite) TestLatLonFallbackKeepsTypedInput() {
	resolver := location.NewResolver(s.geocoder, nil, s.zip)

	for _, raw := range []string{"+10.50,20", " 37.7749, -122.4194 ", "-33.80,151.00"} {
		loc, err := resolver.Resolve(s.ctx, s.parse(raw))

		s.NoError(err)
		s.Equal(strings.TrimSpace(raw), loc.DisplayName)
	}
}

func (s *ResolverTestSuite) TestLatLonFallbackWithoutRawInput() {
	resolver := location.NewResolver(s.geocoder, nil, s.zip)

	loc, err := resolver.Resolve(s.ctx, weather.ParsedLocation{Kind: weather.LocationLatLon, Lat: 40.7128, Lon: -74.006})

	s.NoError(err)
	s.Equal("40.7128,-74.0060", loc.DisplayName)
}

func (s *ResolverTestSuite) TestZipWithInvalidCoordinatesFallsBackToFreeText() {
	s.zip.On("Lookup", mock.Anything, "99999").Return(weather.ZipPlace{Lat: 200, Lon: 0, Name: "Broken"}, nil).Once()
	s.geocoder.On("Search", mock.Anything, "99999").Return([]weather.GeocodeCandidate{
		{Name: "Somewhere", Country: "United States", Lat: 40, Lon: -100},
	}, nil).Once()

	loc, err := s.resolver.Resolve(s.ctx, s.parse("99999"))

	s.NoError(err)
	s.Equal("Somewhere, United States", loc.DisplayName)
	s.Equal(weather.SourceGeocodeAPI, loc.Source)
}

func (s *ResolverTestSuite) TestZeroCacheTTLDisablesCache() {
	cache := inmemorycache.NewInMemoryCacheProvider(0, time.Millisecond)
	resolver := location.NewResolver(s.geocoder, s.reverse, s.zip, location.WithCache(cache, 0))

	s.geocoder.On("Search", mock.Anything, "Springfield").Return([]weather.GeocodeCandidate{
		{Name: "Springfield", Admin1: "Illinois", Country: "United States", Lat: 39.8, Lon: -89.64},
	}, nil).Once()
	s.geocoder.On("Search", mock.Anything, "Springfield").Return(nil, nil).Once()

	first, err := resolver.Resolve(s.ctx, s.parse("Springfield"))
	s.NoError(err)
	s.Equal("Springfield, Illinois, United States", first.DisplayName)

	_, err = resolver.Resolve(s.ctx, s.parse("Springfield"))
	s.True(errors.Is(err, weather.ErrLocationNotFound))

	s.geocoder.AssertNumberOfCalls(s.T(), "Search", 2)
	s.Zero(cache.ItemCount())
}

func (s *ResolverTestSuite) TestCachedFreeTextHitsGeocoderOnce() {
	cache := inmemorycache.NewInMemoryCacheProvider(time.Minute, time.Minute)
	resolver := location.NewResolver(s.geocoder, s.reverse, s.zip, location.WithCache(cache, time.Minute))

	s.geocoder.On("Search", mock.Anything, "Berlin").Return([]weather.GeocodeCandidate{
		{Name: "Berlin", Country: "Germany", Lat: 52.52, Lon: 13.405},
	}, nil).Once()

	first, err := resolver.Resolve(s.ctx, s.parse("Berlin"))
	s.NoError(err)

	second, err := resolver.Resolve(s.ctx, s.parse("  berlin "))
	s.NoError(err)

	s.Equal(first.Lat, second.Lat)
	s.Equal(first.Lon, second.Lon)
	s.Equal("Berlin, Germany", second.DisplayName)
}

func (s *ResolverTestSuite) TestFailuresAreNotCached() {
	cache := mocks.NewMockCache(s.T())
	resolver := location.NewResolver(s.geocoder, s.reverse, s.zip, location.WithCache(cache, time.Minute))

	cache.On("Get", "text:nowhere").Return(nil, false, nil).Once()
	s.geocoder.On("Search", mock.Anything, "nowhere").Return(nil, nil).Once()

	_, err := resolver.Resolve(s.ctx, s.parse("nowhere"))

	s.True(errors.Is(err, weather.ErrLocationNotFound))
	cache.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ResolverTestSuite) TestCacheWriteFailureIsNotFatal() {
	cache := mocks.NewMockCache(s.T())
	resolver := location.NewResolver(s.geocoder, s.reverse, s.zip, location.WithCache(cache, time.Minute))

	cache.On("Get", "zip:10001").Return(nil, false, nil).Once()
	s.zip.On("Lookup", mock.Anything, "10001").Return(weather.ZipPlace{Lat: 40.75, Lon: -73.99, Name: "New York, NY 10001"}, nil).Once()
	cache.On("Set", "zip:10001", mock.Anything, time.Minute).Return(errors.New("cache full")).Once()

	loc, err := resolver.Resolve(s.ctx, s.parse("10001"))

	s.NoError(err)
	s.Equal("New York, NY 10001", loc.DisplayName)
}

func (s *ResolverTestSuite) TestCoordinatesBypassCache() {
	cache := mocks.NewMockCache(s.T())
	resolver := location.NewResolver(s.geocoder, s.reverse, s.zip, location.WithCache(cache, time.Minute))

	s.reverse.On("Reverse", mock.Anything, 1.5, 2.5).Return("", nil).Once()

	loc, err := resolver.Resolve(s.ctx, s.parse("1.5,2.5"))

	s.NoError(err)
	s.Equal("1.5,2.5", loc.DisplayName)
	cache.AssertNotCalled(s.T(), "Get", mock.Anything)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

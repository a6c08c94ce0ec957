package location

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"weatherwise/weather-service/internal/weather"
)

// Cache stores resolved locations for text and ZIP inputs.
type Cache interface {
	Get(key string) (*weather.ResolvedLocation, bool, error)
	Set(key string, loc *weather.ResolvedLocation, ttl time.Duration) error
}

// Resolver turns a parsed location into coordinates and a display name. Tiers
// are tried in order and each one only after the previous tier failed.
type Resolver struct {
	geocoder weather.GeocodeProvider
	reverse  weather.ReverseGeocodeProvider
	zip      weather.ZipProvider
	cache    Cache
	cacheTTL time.Duration
}

type Option func(*Resolver)

// WithCache caches text and ZIP resolutions for ttl. A ttl of zero or less
// leaves the resolver uncached.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl <= 0 {
			r.cache = nil
			r.cacheTTL = 0
			return
		}
		r.cache = cache
		r.cacheTTL = ttl
	}
}

func NewResolver(
	geocoder weather.GeocodeProvider,
	reverse weather.ReverseGeocodeProvider,
	zip weather.ZipProvider,
	opts ...Option,
) *Resolver {
	r := &Resolver{
		geocoder: geocoder,
		reverse:  reverse,
		zip:      zip,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Resolve(ctx context.Context, parsed weather.ParsedLocation) (weather.ResolvedLocation, error) {
	switch parsed.Kind {
	case weather.LocationLatLon:
		return r.resolveLatLon(ctx, parsed), nil
	case weather.LocationZip:
		return r.cached(ctx, parsed, func() (weather.ResolvedLocation, error) {
			return r.resolveZip(ctx, parsed.Zip)
		})
	default:
		return r.cached(ctx, parsed, func() (weather.ResolvedLocation, error) {
			return r.resolveText(ctx, parsed.Text)
		})
	}
}

// resolveLatLon names coordinates via reverse geocoding, falling back to the
// input as the user typed it.
func (r *Resolver) resolveLatLon(ctx context.Context, parsed weather.ParsedLocation) weather.ResolvedLocation {
	logger := zerolog.Ctx(ctx)
	lat, lon := parsed.Lat, parsed.Lon

	var name string
	if r.reverse != nil {
		found, err := r.reverse.Reverse(ctx, lat, lon)
		if err != nil {
			logger.Debug().Err(err).
				Float64("lat", lat).
				Float64("lon", lon).
				Msg("reverse geocoding failed, using coordinates as display name")
		}
		name = strings.TrimSpace(found)
	}

	if name == "" {
		name = strings.TrimSpace(parsed.Raw)
	}
	if name == "" {
		name = CoordinateLabel(lat, lon)
	}

	return weather.ResolvedLocation{Lat: lat, Lon: lon, DisplayName: name, Source: weather.SourceDirect}
}

func (r *Resolver) resolveZip(ctx context.Context, zip string) (weather.ResolvedLocation, error) {
	logger := zerolog.Ctx(ctx)

	place, zipErr := r.zip.Lookup(ctx, zip)
	if zipErr == nil && weather.ValidLatLon(place.Lat, place.Lon) {
		name := strings.TrimSpace(place.Name)
		if name == "" {
			name = zip
		}
		return weather.ResolvedLocation{Lat: place.Lat, Lon: place.Lon, DisplayName: name, Source: weather.SourceZipAPI}, nil
	}

	if zipErr != nil {
		logger.Debug().Err(zipErr).Str("zip", zip).Msg("zip lookup failed, retrying as free text")
	} else {
		logger.Debug().
			Str("zip", zip).
			Float64("lat", place.Lat).
			Float64("lon", place.Lon).
			Msg("zip lookup returned invalid coordinates, retrying as free text")
	}

	loc, err := r.resolveText(ctx, zip)
	if err != nil {
		return weather.ResolvedLocation{}, weather.LocationNotFound(zip, err)
	}
	return loc, nil
}

func (r *Resolver) resolveText(ctx context.Context, text string) (weather.ResolvedLocation, error) {
	candidates, err := r.geocoder.Search(ctx, text)
	if err != nil {
		return weather.ResolvedLocation{}, weather.UpstreamUnavailable(weather.ProviderGeocode, err)
	}

	for _, c := range candidates {
		if !weather.ValidLatLon(c.Lat, c.Lon) {
			continue
		}
		name := c.DisplayName()
		if name == "" {
			name = text
		}
		return weather.ResolvedLocation{Lat: c.Lat, Lon: c.Lon, DisplayName: name, Source: weather.SourceGeocodeAPI}, nil
	}

	return weather.ResolvedLocation{}, weather.LocationNotFound(text, nil)
}

func (r *Resolver) cached(
	ctx context.Context,
	parsed weather.ParsedLocation,
	resolve func() (weather.ResolvedLocation, error),
) (weather.ResolvedLocation, error) {
	if r.cache == nil {
		return resolve()
	}

	key := cacheKey(parsed)
	if hit, ok, err := r.cache.Get(key); err == nil && ok && hit != nil {
		return *hit, nil
	}

	loc, err := resolve()
	if err != nil {
		return loc, err
	}

	if err := r.cache.Set(key, &loc, r.cacheTTL); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to cache resolved location")
	}
	return loc, nil
}

func cacheKey(parsed weather.ParsedLocation) string {
	if parsed.Kind == weather.LocationZip {
		return "zip:" + parsed.Zip
	}
	return "text:" + strings.ToLower(parsed.Text)
}

// CoordinateLabel renders coordinates with four decimals.
func CoordinateLabel(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', 4, 64) + "," + strconv.FormatFloat(lon, 'f', 4, 64)
}

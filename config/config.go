package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"strings"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ProviderTimeout   time.Duration
	ProviderRetryWait time.Duration
	UserAgent         string

	GeocodeBaseURL        string
	ReverseGeocodeBaseURL string
	ZipBaseURL            string
	ArchiveBaseURL        string
	ForecastBaseURL       string
	WikipediaBaseURL      string
	YouTubeBaseURL        string

	YouTubeAPIKey       string
	GoogleStaticMapsKey string

	CORSOrigins []string

	ForecastHorizonDays int
	PartialDataPolicy   string

	GeocodeCacheTTL     time.Duration
	GeocodeCacheCleanup time.Duration

	ListDefaultLimit int
	ListMaxLimit     int
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 60)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("PROVIDER_TIMEOUT", 10*time.Second)
	v.SetDefault("PROVIDER_RETRY_WAIT", 300*time.Millisecond)
	v.SetDefault("USER_AGENT", "WeatherWise/1.0 (weather-service)")

	v.SetDefault("GEOCODE_BASE_URL", "https://geocoding-api.open-meteo.com")
	v.SetDefault("REVERSE_GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("ZIP_BASE_URL", "https://api.zippopotam.us")
	v.SetDefault("ARCHIVE_BASE_URL", "https://archive-api.open-meteo.com")
	v.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org")
	v.SetDefault("YOUTUBE_BASE_URL", "https://www.googleapis.com")

	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("FORECAST_HORIZON_DAYS", 16)
	v.SetDefault("PARTIAL_DATA_POLICY", "fail")
	v.SetDefault("GEOCODE_CACHE_TTL", 30*time.Minute)
	v.SetDefault("GEOCODE_CACHE_CLEANUP", 10*time.Minute)
	v.SetDefault("LIST_DEFAULT_LIMIT", 50)
	v.SetDefault("LIST_MAX_LIMIT", 500)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		DBName:                v.GetString("DATABASE_NAME"),
		DBPassword:            v.GetString("DATABASE_PASSWORD"),
		DBUser:                v.GetString("DATABASE_USER"),
		DBPort:                v.GetString("DATABASE_PORT"),
		DBHost:                v.GetString("DATABASE_HOST"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		ProviderTimeout:       v.GetDuration("PROVIDER_TIMEOUT"),
		ProviderRetryWait:     v.GetDuration("PROVIDER_RETRY_WAIT"),
		UserAgent:             v.GetString("USER_AGENT"),
		GeocodeBaseURL:        v.GetString("GEOCODE_BASE_URL"),
		ReverseGeocodeBaseURL: v.GetString("REVERSE_GEOCODE_BASE_URL"),
		ZipBaseURL:            v.GetString("ZIP_BASE_URL"),
		ArchiveBaseURL:        v.GetString("ARCHIVE_BASE_URL"),
		ForecastBaseURL:       v.GetString("FORECAST_BASE_URL"),
		WikipediaBaseURL:      v.GetString("WIKIPEDIA_BASE_URL"),
		YouTubeBaseURL:        v.GetString("YOUTUBE_BASE_URL"),
		YouTubeAPIKey:         v.GetString("YOUTUBE_API_KEY"),
		GoogleStaticMapsKey:   v.GetString("GOOGLE_STATIC_MAPS_KEY"),
		CORSOrigins:           splitList(v.GetString("CORS_ORIGINS")),
		ForecastHorizonDays:   v.GetInt("FORECAST_HORIZON_DAYS"),
		PartialDataPolicy:     strings.ToLower(strings.TrimSpace(v.GetString("PARTIAL_DATA_POLICY"))),
		GeocodeCacheTTL:       v.GetDuration("GEOCODE_CACHE_TTL"),
		GeocodeCacheCleanup:   v.GetDuration("GEOCODE_CACHE_CLEANUP"),
		ListDefaultLimit:      v.GetInt("LIST_DEFAULT_LIMIT"),
		ListMaxLimit:          v.GetInt("LIST_MAX_LIMIT"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.PartialDataPolicy {
	case "fail", "omit":
	default:
		return fmt.Errorf("PARTIAL_DATA_POLICY must be fail or omit, got %q", c.PartialDataPolicy)
	}
	if c.ForecastHorizonDays <= 0 {
		return fmt.Errorf("FORECAST_HORIZON_DAYS must be positive, got %d", c.ForecastHorizonDays)
	}
	if c.ListDefaultLimit <= 0 || c.ListMaxLimit < c.ListDefaultLimit {
		return fmt.Errorf("invalid list limits: default %d, max %d", c.ListDefaultLimit, c.ListMaxLimit)
	}
	return nil
}

// GeocodeCacheEnabled is false when GEOCODE_CACHE_TTL is zero or negative.
func (c *Config) GeocodeCacheEnabled() bool {
	return c.GeocodeCacheTTL > 0
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

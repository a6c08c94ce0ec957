package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"weatherwise/weather-service/config"
	"weatherwise/weather-service/internal/aggregator"
	"weatherwise/weather-service/internal/api/v1/handlers"
	"weatherwise/weather-service/internal/db/weatherrequest"
	"weatherwise/weather-service/internal/info"
	"weatherwise/weather-service/internal/inmemorycache"
	"weatherwise/weather-service/internal/location"
	"weatherwise/weather-service/internal/providers"
	"weatherwise/weather-service/internal/providers/nominatim"
	"weatherwise/weather-service/internal/providers/openmeteo"
	"weatherwise/weather-service/internal/providers/zippopotam"
	"weatherwise/weather-service/internal/service"
	"weatherwise/weather-service/internal/timezone"
	"weatherwise/weather-service/internal/weather"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		logger.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	weatherRepo := weatherrequest.NewRepository(db)

	newClient := func(name, baseURL string) *providers.Client {
		return providers.NewClient(providers.Config{
			Name:      name,
			BaseURL:   baseURL,
			Timeout:   conf.ProviderTimeout,
			RetryWait: conf.ProviderRetryWait,
			UserAgent: conf.UserAgent,
		})
	}

	var resolverOpts []location.Option
	if conf.GeocodeCacheEnabled() {
		cacheProvider := inmemorycache.NewInMemoryCacheProvider(conf.GeocodeCacheTTL, conf.GeocodeCacheCleanup)
		resolverOpts = append(resolverOpts, location.WithCache(cacheProvider, conf.GeocodeCacheTTL))
	} else {
		logger.Info().Msg("geocode cache disabled")
	}

	resolver := location.NewResolver(
		openmeteo.NewGeocoder(newClient(weather.ProviderGeocode, conf.GeocodeBaseURL)),
		nominatim.NewReverseGeocoder(newClient(weather.ProviderReverse, conf.ReverseGeocodeBaseURL)),
		zippopotam.NewZipLookup(newClient(weather.ProviderZip, conf.ZipBaseURL)),
		resolverOpts...,
	)

	var clock aggregator.Clock
	finder, tzErr := timezone.DefaultFinder()
	if tzErr != nil {
		logger.Warn().Err(tzErr).Msg("timezone lookup unavailable, using UTC calendar days")
		clock = aggregator.UTCClock(time.Now)
	} else {
		clock = timezone.NewClock(finder, time.Now)
	}

	policy, err := aggregator.ParsePolicy(conf.PartialDataPolicy)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid partial data policy")
	}

	weatherAggregator := aggregator.New(
		openmeteo.NewWeatherProvider(
			newClient(weather.ProviderArchive, conf.ArchiveBaseURL),
			newClient(weather.ProviderForecast, conf.ForecastBaseURL),
		),
		clock,
		aggregator.Options{
			Policy:      policy,
			HorizonDays: conf.ForecastHorizonDays,
		},
	)

	weatherService := service.NewWeatherRequestService(resolver, weatherAggregator)

	infoService := info.NewService(
		newClient("wikipedia", conf.WikipediaBaseURL),
		newClient("youtube", conf.YouTubeBaseURL),
		info.Config{
			YouTubeAPIKey:       conf.YouTubeAPIKey,
			GoogleStaticMapsKey: conf.GoogleStaticMapsKey,
		},
	)

	handler := handlers.NewWeatherHandler(weatherService, weatherRepo, infoService, handlers.Options{
		Timeout:          conf.HTTPTimeoutDuration(),
		ListDefaultLimit: conf.ListDefaultLimit,
		ListMaxLimit:     conf.ListMaxLimit,
		CORSOrigins:      conf.CORSOrigins,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Str("policy", string(policy)).
		Int("horizon_days", conf.ForecastHorizonDays).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherrequest.WeatherRequest{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/handler"
	"github.com/MKhiriev/go-box-keeper/internal/lock"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/metrics"
	"github.com/MKhiriev/go-box-keeper/internal/server"
	"github.com/MKhiriev/go-box-keeper/internal/service"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("box-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	locker, err := newLocker(ctx, cfg.Lock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating box locker")
	}

	appMetrics := metrics.New()

	services, err := service.NewServices(
		store.NewStorages(db, log),
		locker,
		appMetrics,
		cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, appMetrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newLocker uses Redis when an address is configured, so that several
// server instances share box locks. A single instance can run without it.
func newLocker(ctx context.Context, cfg config.Lock, log *logger.Logger) (lock.Locker, error) {
	if cfg.RedisAddress == "" {
		log.Warn().Msg("no redis address configured, box locks are local to this process")
		return lock.NewMemoryLocker(), nil
	}

	client, err := lock.NewRedisClient(ctx, lock.RedisOptions{
		Address:  cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}

	return lock.NewRedisLocker(client), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

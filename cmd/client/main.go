package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-box-keeper/internal/adapter"
	"github.com/MKhiriev/go-box-keeper/internal/client"
	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("boxctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	if err = logger.SetGlobalLevel(level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "boxctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

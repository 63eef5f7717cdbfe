package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/resistance-accounts/internal/adapter"
	"github.com/MKhiriev/resistance-accounts/internal/client"
	"github.com/MKhiriev/resistance-accounts/internal/config"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("accounts-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		if errors.Is(err, client.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

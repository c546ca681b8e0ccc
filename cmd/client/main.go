// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-backend-config/internal/adapter"
	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/internal/service"
	"github.com/MKhiriev/go-backend-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries only the document.
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("backend-config-client")
	cfg, err := config.GetClientConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var fetcher service.ConfigFetcher
	if cfg.Adapter.HTTPAddress != "" {
		serverAdapter, adapterErr := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if adapterErr != nil {
			log.Fatal().Err(adapterErr).Msg("create server adapter")
		}
		fetcher = serverAdapter
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	svc := service.NewClientBackendConfigService(cfg.App, fetcher, log)
	doc, err := svc.GetBackendConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting backend config")
	}

	out, err := render(doc, cfg.App.OutputFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("error rendering backend config")
	}

	if _, err = os.Stdout.Write(out); err != nil {
		log.Fatal().Err(err).Msg("error writing backend config")
	}
}

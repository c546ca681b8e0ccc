// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backend-config/internal/backendconfig"
	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/internal/origin"
)

type backendConfigService struct {
	// defaultConfig is nil when no origin is configured.
	defaultConfig *backendconfig.Config

	logger *logger.Logger
}

// NewBackendConfigService resolves the configured origin once, up front, so
// a malformed origin stops the server at startup.
func NewBackendConfigService(cfg config.ServerApp, logger *logger.Logger) (BackendConfigService, error) {
	svc := &backendConfigService{logger: logger}

	if cfg.Origin == "" {
		logger.Warn().Msg("no origin configured, backend config is resolved per request only")
		return svc, nil
	}

	defaultConfig, err := backendconfig.Resolve(cfg.Origin)
	if err != nil {
		return nil, fmt.Errorf("error resolving configured origin: %w", err)
	}
	svc.defaultConfig = defaultConfig

	logger.Info().Str("backend_url", defaultConfig.BackendURL()).Msg("default backend config resolved")

	return svc, nil
}

func (s *backendConfigService) Default() (*backendconfig.Config, error) {
	if s.defaultConfig == nil {
		return nil, ErrOriginUnavailable
	}

	return s.defaultConfig, nil
}

func (s *backendConfigService) ForOrigin(ctx context.Context, o origin.Origin) *backendconfig.Config {
	cfg := backendconfig.New(o)

	logger.FromContext(ctx).Debug().
		Str("origin", o.String()).
		Str("backend_url", cfg.BackendURL()).
		Msg("backend config resolved for request origin")

	return cfg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backend-config/internal/backendconfig"
	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/models"
)

type clientBackendConfigService struct {
	origin  string
	fetcher ConfigFetcher

	logger *logger.Logger
}

// NewClientBackendConfigService returns a service that reads the document
// through fetcher when one is given and resolves cfg.Origin locally
// otherwise.
func NewClientBackendConfigService(cfg config.ClientApp, fetcher ConfigFetcher, logger *logger.Logger) ClientBackendConfigService {
	return &clientBackendConfigService{
		origin:  cfg.Origin,
		fetcher: fetcher,
		logger:  logger,
	}
}

func (s *clientBackendConfigService) GetBackendConfig(ctx context.Context) (models.BackendConfig, error) {
	if s.fetcher != nil {
		s.logger.Debug().Msg("fetching backend config from server")

		doc, err := s.fetcher.FetchBackendConfig(ctx)
		if err != nil {
			return models.BackendConfig{}, fmt.Errorf("error fetching backend config: %w", err)
		}
		return doc, nil
	}

	if s.origin == "" {
		return models.BackendConfig{}, ErrOriginUnavailable
	}

	s.logger.Debug().Str("origin", s.origin).Msg("resolving backend config locally")

	cfg, err := backendconfig.Resolve(s.origin)
	if err != nil {
		return models.BackendConfig{}, err
	}

	return cfg.Document(), nil
}

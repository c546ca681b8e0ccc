// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/models"
)

type Services struct {
	AppInfoService       AppInfoService
	BackendConfigService BackendConfigService
}

func NewServices(cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	backendCfg, err := NewBackendConfigService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating backend config service: %w", err)
	}

	return &Services{
		AppInfoService:       appInfo,
		BackendConfigService: backendCfg,
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-backend-config/internal/backendconfig"
	"github.com/MKhiriev/go-backend-config/internal/origin"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BackendConfigService hands out resolved backend configs to the transport
// layer.
type BackendConfigService interface {
	// Default returns the config for the configured origin. It fails with
	// ErrOriginUnavailable when no origin was configured.
	Default() (*backendconfig.Config, error)
	// ForOrigin returns the config for an origin derived at request time.
	ForOrigin(ctx context.Context, o origin.Origin) *backendconfig.Config
}

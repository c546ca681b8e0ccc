// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-backend-config/models"
)

// ClientBackendConfigService produces the document printed by the client.
type ClientBackendConfigService interface {
	GetBackendConfig(ctx context.Context) (models.BackendConfig, error)
}

// ConfigFetcher reads the document from a running server. It is satisfied
// by adapter.ServerAdapter.
type ConfigFetcher interface {
	FetchBackendConfig(ctx context.Context) (models.BackendConfig, error)
}

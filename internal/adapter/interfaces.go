// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to a running
// backend-config server.
//
// [ServerAdapter] decouples the client service layer from HTTP. Non-2xx
// responses are mapped by mapHTTPError onto the sentinels in errors.go so
// callers can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-backend-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter reads resolved configuration from a running server.
type ServerAdapter interface {
	// FetchBackendConfig GETs /api/backend-config. The server resolves the
	// document for the origin this client used to reach it.
	FetchBackendConfig(ctx context.Context) (models.BackendConfig, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-backend-config/internal/backendconfig"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/internal/metrics"
	"github.com/MKhiriev/go-backend-config/internal/origin"
)

// getBackendConfig answers with the backend config for the origin the
// browser used to reach us, or the configured origin when the request's own
// origin could not be derived.
func (h *Handler) getBackendConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, source, err := h.resolveBackendConfig(r.Context())
	if err != nil {
		metrics.RecordUnavailable()
		log.Warn().Err(err).Msg("backend config unavailable")
		writeError(w, err)
		return
	}
	metrics.RecordResolved(source)

	// The document depends on the request origin.
	w.Header().Set("Cache-Control", "no-store")
	if _, err = writeJSON(w, cfg.Document(), http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing backend config")
	}
}

// resolveBackendConfig also reports which origin source was used.
func (h *Handler) resolveBackendConfig(ctx context.Context) (*backendconfig.Config, string, error) {
	if o, ok := origin.FromContext(ctx); ok {
		return h.services.BackendConfigService.ForOrigin(ctx, o), metrics.SourceRequest, nil
	}

	cfg, err := h.services.BackendConfigService.Default()
	return cfg, metrics.SourceDefault, err
}

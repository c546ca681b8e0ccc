// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-backend-config/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	backendConfigRoute = "/api/backend-config"
	versionRoute       = "/api/version/"
	metricsRoute       = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withOrigin)

	router.Group(func(r chi.Router) {
		if h.rateLimit > 0 {
			r.Use(h.newRateLimiter())
		}

		r.Get(backendConfigRoute, h.getBackendConfig)
		r.Get(versionRoute, h.getServerVersion)
	})

	router.Method(http.MethodGet, metricsRoute, metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

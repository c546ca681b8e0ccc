// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/internal/service"
)

type Handler struct {
	services *service.Services

	// trustForwarded makes request origins and client IPs come from
	// X-Forwarded-* headers.
	trustForwarded bool
	// rateLimit is /api requests per minute per client IP; zero disables it.
	rateLimit int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("trust_forwarded", cfg.TrustForwardedHeaders).
		Int("rate_limit", cfg.RateLimit).
		Msg("http handler created")

	return &Handler{
		services:       services,
		trustForwarded: cfg.TrustForwardedHeaders,
		rateLimit:      cfg.RateLimit,
		logger:         logger,
	}
}

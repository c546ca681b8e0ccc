// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds application settings used by the server.
type ServerApp struct {
	// Origin is the fallback used when a request's own origin cannot be
	// derived. May be empty.
	Origin string
	// Version is reported by /api/version/.
	Version string
}

// ServerHTTP holds the HTTP listener settings.
type ServerHTTP struct {
	HTTPAddress           string
	RequestTimeout        time.Duration
	TrustForwardedHeaders bool
	// RateLimit is requests per minute per client IP on /api routes; zero
	// disables it.
	RateLimit int
}

// ServerConfig is the server configuration view of [StructuredConfig].
type ServerConfig struct {
	App    ServerApp
	Server ServerHTTP
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	if err = serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Origin:  cfg.App.Origin,
			Version: cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:           cfg.Server.HTTPAddress,
			RequestTimeout:        cfg.Server.RequestTimeout,
			TrustForwardedHeaders: cfg.Server.TrustForwardedHeaders,
			RateLimit:             cfg.Server.RateLimit,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Output formats accepted by the client binary.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Origin is resolved locally when no adapter address is set.
	Origin string
	// OutputFormat is FormatJSON or FormatYAML.
	OutputFormat string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of a running server. Empty means the
	// config is resolved locally.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	format := cfg.App.OutputFormat
	if format == "" {
		format = FormatJSON
	}

	return &ClientConfig{
		App: ClientApp{
			Origin:       cfg.App.Origin,
			OutputFormat: format,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}

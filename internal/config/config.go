// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the origin the application is served from, the version and
	// the output format of the client binary.
	App App `envPrefix:"APP_"`

	// Server holds network and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for reading the backend config from a running
	// server instead of resolving it locally.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Origin is the scheme + host + port the frontend is served from
	// (e.g. "https://example.com:8443"). It stands in for the execution
	// context when there is no inbound request to derive it from.
	// Env: APP_ORIGIN
	Origin string `env:"ORIGIN"`

	// Version is the version string reported by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// OutputFormat selects how the client prints the document: "json"
	// (default) or "yaml".
	// Env: APP_OUTPUT_FORMAT
	OutputFormat string `env:"OUTPUT_FORMAT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TrustForwardedHeaders makes the server derive request origins from
	// X-Forwarded-Proto / X-Forwarded-Host. Enable it only behind a reverse
	// proxy that sets those headers.
	// Env: SERVER_TRUST_FORWARDED_HEADERS
	TrustForwardedHeaders bool `env:"TRUST_FORWARDED_HEADERS"`

	// RateLimit is the number of /api requests one client IP may make per
	// minute. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the base URL of a running server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

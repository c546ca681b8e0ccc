// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendconfig

import (
	"fmt"

	"github.com/MKhiriev/go-backend-config/internal/origin"
	"github.com/MKhiriev/go-backend-config/models"
)

// Ports of the services a frontend addresses directly in development.
const (
	JavaPort    = "9000"
	NodePort    = "5000"
	AngularPort = "4200"
)

// Config holds the resolved backend configuration for one origin.
type Config struct {
	backendURL string
}

// New builds the configuration for o. The backend URL is the serialised
// origin followed by exactly one slash.
func New(o origin.Origin) *Config {
	return &Config{
		backendURL: o.String() + "/",
	}
}

// Resolve parses rawOrigin and builds its configuration.
//
// An empty rawOrigin yields an error wrapping [origin.ErrEmptyOrigin]; a
// malformed one wraps [origin.ErrInvalidOrigin].
func Resolve(rawOrigin string) (*Config, error) {
	o, err := origin.Parse(rawOrigin)
	if err != nil {
		return nil, fmt.Errorf("error resolving backend config: %w", err)
	}

	return New(o), nil
}

// BackendURL returns the base URL for backend requests, e.g.
// "https://example.com:8443/".
func (c *Config) BackendURL() string {
	return c.backendURL
}

// JavaPort returns the port of the Java service.
func (c *Config) JavaPort() string {
	return JavaPort
}

// NodePort returns the port of the Node service.
func (c *Config) NodePort() string {
	return NodePort
}

// AngularPort returns the port of the Angular dev server.
func (c *Config) AngularPort() string {
	return AngularPort
}

// Document returns the configuration in its wire form.
func (c *Config) Document() models.BackendConfig {
	return models.BackendConfig{
		BackendURL:  c.BackendURL(),
		JavaPort:    c.JavaPort(),
		NodePort:    c.NodePort(),
		AngularPort: c.AngularPort(),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/models"
	"github.com/go-resty/resty/v2"
)

const (
	backendConfigPath = "/api/backend-config"

	defaultRequestTimeout = 15 * time.Second
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress is normalised to a base URL without a trailing
// slash; a zero RequestTimeout falls back to 15s.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a URL with a host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Dur("timeout", timeout).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.New("address must be an http or https URL with a host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) FetchBackendConfig(ctx context.Context) (models.BackendConfig, error) {
	var doc models.BackendConfig

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(backendConfigPath)
	if err != nil {
		return models.BackendConfig{}, fmt.Errorf("backend config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackendConfig{}, err
	}

	if !strings.HasSuffix(doc.BackendURL, "/") {
		return models.BackendConfig{}, fmt.Errorf("%w: backend_url %q", ErrMalformedResponse, doc.BackendURL)
	}

	h.logger.Debug().
		Str("backend_url", doc.BackendURL).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("backend config fetched")

	return doc, nil
}

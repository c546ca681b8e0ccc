// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It serves the resolved backend config to browsers, reports the
// application version and exposes Prometheus metrics. Request tracing,
// access logging, origin derivation and optional rate limiting are handled
// by middleware in this package before requests reach the service layer.
package http

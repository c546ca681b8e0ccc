// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus metrics for backend config resolution
// and the HTTP surface serving it.
//
// Labels stay low-cardinality: origins, hosts and trace ids never become
// label values.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sources a served backend config was resolved from.
const (
	SourceRequest = "request"
	SourceDefault = "default"
)

var (
	// BackendConfigResolvedTotal counts served backend configs by source.
	BackendConfigResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_config_resolved_total",
		Help: "Total number of backend configs served, by the origin source they were resolved from.",
	}, []string{"source"})

	// BackendConfigUnavailableTotal counts requests that could not be
	// answered because no origin was available.
	BackendConfigUnavailableTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backend_config_unavailable_total",
		Help: "Total number of backend config requests without a request or configured origin.",
	})

	// HTTPRequestDuration observes request latency by chi route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_config_http_request_duration_seconds",
		Help:    "HTTP request latency, by route pattern, method and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

func RecordResolved(source string) {
	BackendConfigResolvedTotal.WithLabelValues(source).Inc()
}

func RecordUnavailable() {
	BackendConfigUnavailableTotal.Inc()
}

// ObserveHTTPRequest records one served request. An empty route is reported
// as "unmatched".
func ObserveHTTPRequest(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

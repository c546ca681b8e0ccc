// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/go-chi/httprate"
)

const (
	rateLimitWindow  = time.Minute
	rateLimitMessage = "rate limit exceeded"
)

// newRateLimiter allows h.rateLimit requests per client IP per minute with a
// sliding window, counted across every route it wraps. Behind a trusted
// proxy the client IP comes from X-Forwarded-For / X-Real-IP.
func (h *Handler) newRateLimiter() func(http.Handler) http.Handler {
	keyFunc := httprate.KeyByIP
	if h.trustForwarded {
		keyFunc = httprate.KeyByRealIP
	}

	return httprate.Limit(
		h.rateLimit,
		rateLimitWindow,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(h.rateLimitExceeded),
	)
}

func (h *Handler) rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
	if _, err := writeJSON(w, errorBody(w, rateLimitMessage), http.StatusTooManyRequests); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing rate limit response")
	}
}

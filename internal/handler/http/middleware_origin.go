// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-backend-config/internal/logger"
	"github.com/MKhiriev/go-backend-config/internal/origin"
)

// withOrigin derives the request origin and stores it in the request
// context. Requests whose origin cannot be derived pass through unchanged;
// handlers then fall back to the configured origin.
func (h *Handler) withOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o, err := origin.FromRequest(r, h.trustForwarded)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("host", r.Host).Msg("request origin not derived")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(origin.NewContext(r.Context(), o)))
	})
}

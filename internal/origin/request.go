// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	forwardedProtoHeader = "X-Forwarded-Proto"
	forwardedHostHeader  = "X-Forwarded-Host"
)

// FromRequest derives the origin the client used to reach the server.
//
// The scheme comes from the connection (TLS or not) and the host from the
// Host header. In a proxied deployment the reverse proxy terminates the
// client connection, so when trustForwarded is set the X-Forwarded-Proto and
// X-Forwarded-Host headers take precedence. Only the first entry of a
// comma-separated header is used.
func FromRequest(r *http.Request, trustForwarded bool) (Origin, error) {
	scheme := schemeHTTP
	if r.TLS != nil {
		scheme = schemeHTTPS
	}
	host := r.Host

	if trustForwarded {
		if proto := firstHeaderValue(r.Header.Get(forwardedProtoHeader)); proto != "" {
			scheme = proto
		}
		if fwdHost := firstHeaderValue(r.Header.Get(forwardedHostHeader)); fwdHost != "" {
			host = fwdHost
		}
	}

	if host == "" {
		return Origin{}, fmt.Errorf("%w: request carries no host", ErrEmptyOrigin)
	}

	return Parse(scheme + "://" + host)
}

func firstHeaderValue(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		host           string
		tls            bool
		headers        map[string]string
		trustForwarded bool
		expected       string
	}{
		{
			name:     "plain http",
			host:     "localhost:4200",
			expected: "http://localhost:4200",
		},
		{
			name:     "tls connection",
			host:     "example.com:8443",
			tls:      true,
			expected: "https://example.com:8443",
		},
		{
			name:     "default port in host header",
			host:     "example.com:80",
			expected: "http://example.com",
		},
		{
			name: "forwarded headers ignored when untrusted",
			host: "backend:8080",
			headers: map[string]string{
				forwardedProtoHeader: "https",
				forwardedHostHeader:  "example.com",
			},
			expected: "http://backend:8080",
		},
		{
			name: "forwarded headers honoured when trusted",
			host: "backend:8080",
			headers: map[string]string{
				forwardedProtoHeader: "https",
				forwardedHostHeader:  "example.com",
			},
			trustForwarded: true,
			expected:       "https://example.com",
		},
		{
			name: "first forwarded value wins",
			host: "backend:8080",
			headers: map[string]string{
				forwardedProtoHeader: "https, http",
				forwardedHostHeader:  "public.example:8443, proxy.internal",
			},
			trustForwarded: true,
			expected:       "https://public.example:8443",
		},
		{
			name:           "trusted but no forwarded headers",
			host:           "localhost:5000",
			trustForwarded: true,
			expected:       "http://localhost:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/backend-config", nil)
			req.Host = tt.host
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			o, err := FromRequest(req, tt.trustForwarded)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, o.String())
		})
	}
}

func TestFromRequest_NoHost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = ""

	_, err := FromRequest(req, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyOrigin)
}

func TestFromRequest_HostWithPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "backend:8080"
	req.Header.Set(forwardedHostHeader, "evil.example/app")

	_, err := FromRequest(req, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOrigin)
}

func TestFromRequest_UnsupportedForwardedProto(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(forwardedProtoHeader, "ws")

	_, err := FromRequest(req, true)
	assert.ErrorIs(t, err, ErrInvalidOrigin)
}

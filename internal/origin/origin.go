// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"
)

// hostProfile maps host names the way browsers serialise an origin host.
// Unlike idna.Lookup it accepts underscores and leading, trailing or
// doubled hyphens, as used by container service names like "my_frontend".
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
	idna.Transitional(false),
)

// Origin is the scheme + host + port tuple identifying where an application
// is served from. The zero value means "no origin".
type Origin struct {
	// Scheme is either "http" or "https".
	Scheme string
	// Host is the lower-case ASCII host name or IP literal. IPv6 literals
	// are stored without brackets.
	Host string
	// Port is empty when the scheme's default port is used.
	Port string
}

// IsZero reports whether o holds no origin.
func (o Origin) IsZero() bool {
	return o.Scheme == "" && o.Host == ""
}

// String returns the serialised origin, e.g. "https://example.com:8443".
// The result never ends with a slash.
func (o Origin) String() string {
	if o.IsZero() {
		return ""
	}

	if o.Port != "" {
		return o.Scheme + "://" + net.JoinHostPort(o.Host, o.Port)
	}

	host := o.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	return o.Scheme + "://" + host
}

// Parse converts raw into a normalised [Origin].
//
// Trailing slashes are accepted and dropped. A path, query, fragment or
// userinfo makes the input invalid, as does any scheme other than http and
// https. The default port of the scheme is omitted from the result.
func Parse(raw string) (Origin, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Origin{}, ErrEmptyOrigin
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return Origin{}, fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != schemeHTTP && scheme != schemeHTTPS {
		return Origin{}, fmt.Errorf("%w: unsupported scheme %q in %q", ErrInvalidOrigin, u.Scheme, raw)
	}

	switch {
	case u.Opaque != "" || u.Host == "":
		return Origin{}, fmt.Errorf("%w: missing host in %q", ErrInvalidOrigin, raw)
	case u.User != nil:
		return Origin{}, fmt.Errorf("%w: userinfo is not allowed in %q", ErrInvalidOrigin, raw)
	case u.RawQuery != "" || u.ForceQuery:
		return Origin{}, fmt.Errorf("%w: query is not allowed in %q", ErrInvalidOrigin, raw)
	case u.Fragment != "":
		return Origin{}, fmt.Errorf("%w: fragment is not allowed in %q", ErrInvalidOrigin, raw)
	case strings.Trim(u.Path, "/") != "":
		return Origin{}, fmt.Errorf("%w: path is not allowed in %q", ErrInvalidOrigin, raw)
	}

	host, err := normalizeHost(u.Hostname())
	if err != nil {
		return Origin{}, err
	}

	port, err := normalizePort(scheme, u.Port())
	if err != nil {
		return Origin{}, err
	}

	return Origin{Scheme: scheme, Host: host, Port: port}, nil
}

func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("%w: host is empty", ErrInvalidOrigin)
	}

	// IPv4-mapped IPv6 literals keep their IPv6 form.
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.String(), nil
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: host %q: %w", ErrInvalidOrigin, host, err)
	}

	return strings.ToLower(ascii), nil
}

func normalizePort(scheme, port string) (string, error) {
	if port == "" {
		return "", nil
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("%w: port %q out of range", ErrInvalidOrigin, port)
	}

	if n == defaultPort(scheme) {
		return "", nil
	}

	return strconv.Itoa(n), nil
}

func defaultPort(scheme string) int {
	if scheme == schemeHTTPS {
		return 443
	}
	return 80
}

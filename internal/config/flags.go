// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-origin origin the frontend is served from (e.g. https://example.com)
//	-app-version version reported by the server
//	-format client output format: json or yaml
//	-request-timeout server request timeout (e.g. "30s", "1m")
//	-trust-forwarded derive request origins from X-Forwarded-* headers
//	-rate-limit /api requests per minute per client IP, 0 disables
//	-r base URL of a running server to read the config from
//	-adapter-timeout client request timeout (e.g. "5s")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var appOrigin, appVersion, outputFormat string
	var requestTimeout, adapterTimeout time.Duration
	var trustForwarded bool
	var rateLimit int
	var remoteAddress string
	var jsonConfigPath string

	fs := flag.NewFlagSet("backend-config", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&appOrigin, "origin", "", "Origin the frontend is served from")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&outputFormat, "format", "", "Output format: json or yaml")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&trustForwarded, "trust-forwarded", false, "Trust X-Forwarded-Proto and X-Forwarded-Host")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client IP (0 disables)")
	fs.StringVar(&remoteAddress, "r", "", "Base URL of a running server")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Origin:       appOrigin,
			Version:      appVersion,
			OutputFormat: outputFormat,
		},
		Server: Server{
			HTTPAddress:           serverAddress.String(),
			RequestTimeout:        requestTimeout,
			TrustForwardedHeaders: trustForwarded,
			RateLimit:             rateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

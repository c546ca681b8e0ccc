// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package origin parses and normalises the origin (scheme, host and port)
// of the context the application is served from.
//
// An [Origin] is obtained either from a configured string via [Parse] or
// from an inbound HTTP request via [FromRequest]. Its [Origin.String] form
// follows browser origin serialisation: lower-case scheme and host, IDN
// hosts in ASCII, default ports omitted and no trailing slash.
package origin

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import "errors"

var (
	// ErrEmptyOrigin is returned when no origin is available to parse.
	ErrEmptyOrigin = errors.New("origin is empty")
	// ErrInvalidOrigin is returned when the input is not a valid http(s)
	// origin. Returned errors wrap it together with the specific reason.
	ErrInvalidOrigin = errors.New("invalid origin")
)

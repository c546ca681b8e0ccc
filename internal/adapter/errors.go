// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMalformedResponse means a 2xx response body is not a usable
	// backend config document.
	ErrMalformedResponse = errors.New("malformed response")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrOriginUnavailable is returned when a config is requested for the
	// configured origin but none was configured.
	ErrOriginUnavailable = errors.New("no origin available to resolve backend config")
)

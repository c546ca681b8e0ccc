// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-backend-config/internal/origin"
	"github.com/MKhiriev/go-backend-config/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrOriginUnavailable: http.StatusBadRequest,
	origin.ErrEmptyOrigin:        http.StatusBadRequest,
	origin.ErrInvalidOrigin:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-backend-config/models"
)

// writeJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func writeJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// writeError writes err as a [models.ErrorResponse] with the status
// resolved by statusFromError. The trace id set by withTraceID is echoed in
// the body.
func writeError(w http.ResponseWriter, err error) {
	_, _ = writeJSON(w, errorBody(w, err.Error()), statusFromError(err))
}

func errorBody(w http.ResponseWriter, msg string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:   msg,
		TraceID: w.Header().Get(traceIDHeader),
	}
}

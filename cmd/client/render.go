// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-backend-config/internal/config"
	"github.com/MKhiriev/go-backend-config/models"
	"gopkg.in/yaml.v3"
)

// render encodes doc in the given output format, newline-terminated.
func render(doc models.BackendConfig, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON, "":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding JSON: %w", err)
		}
		return append(out, '\n'), nil
	case config.FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("error encoding YAML: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

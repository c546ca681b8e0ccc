// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackendConfig is the document a frontend reads to decide where backend
// requests go. Keys keep the names the frontend already consumes.
//
// BackendURL is used in proxied deployments, where one origin fronts every
// service. The port fields address each service directly in development.
type BackendConfig struct {
	BackendURL  string `json:"backend_url" yaml:"backend_url"`
	JavaPort    string `json:"javaport" yaml:"javaport"`
	NodePort    string `json:"nodeport" yaml:"nodeport"`
	AngularPort string `json:"angularport" yaml:"angularport"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// newTestBuilder returns a builder that parses args instead of the test
// binary's own command line.
func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Origin: "http://localhost:4200"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "http://localhost:4200", cfg.App.Origin)
}

// TestBuild_LaterSourceWins verifies that a non-zero value from a later
// source overrides the earlier one while zero values leave it untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{Origin: "http://localhost:4200", Version: "env"},
			Server: Server{RequestTimeout: time.Second},
		},
		&StructuredConfig{App: App{Origin: "https://example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.App.Origin)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Origin: "not an origin"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_ORIGIN", "http://localhost:4200")

	b := newTestBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "http://localhost:4200", b.configs[0].App.Origin)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newTestBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withFlags())
}

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newTestBuilder("-origin", "https://example.com:8443", "-a", "localhost:8080")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://example.com:8443", b.configs[0].App.Origin)
	assert.Equal(t, "localhost:8080", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newTestBuilder("-unknown")
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithFlags_OverridesEnv verifies the env < flags priority end to end.
func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("APP_ORIGIN", "http://localhost:4200")
	t.Setenv("APP_VERSION", "from-env")

	cfg, err := newTestBuilder("-origin", "https://example.com").
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.App.Origin)
	assert.Equal(t, "from-env", cfg.App.Version)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withJSON())
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.Origin = "https://example.com"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "https://example.com", b.configs[1].App.Origin)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/first/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// TestWithJSON_OverridesFlags verifies that the JSON file has the highest
// priority.
func TestWithJSON_OverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Origin = "https://from-json.example"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newTestBuilder("-origin", "http://from-flags.example", "-c", path).
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "https://from-json.example", cfg.App.Origin)
}

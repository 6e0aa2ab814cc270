// Package testutil provides test helpers and fixtures for customtab tests.
package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// Fixture names.
const (
	FixtureFull                  = "full.yaml"
	FixtureMalformedExtras       = "malformed_extras.yaml"
	FixtureMalformedActionButton = "malformed_action_button.yaml"
	FixturePlain                 = "plain.json"
)

// WriteTempFile writes content to a file in the specified directory.
func WriteTempFile(t *testing.T, dir, filename, content string) string {
	t.Helper()

	path := filepath.Join(dir, filename)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err, "failed to write temp file: %s", filename)

	return path
}

// LoadFixture loads a fixture file from the embedded fixtures directory.
func LoadFixture(t *testing.T, name string) []byte {
	t.Helper()

	content, err := fixturesFS.ReadFile("fixtures/" + name)
	require.NoError(t, err, "failed to load fixture: %s", name)

	return content
}

// WriteFixture copies a fixture into a fresh temp directory and returns the
// path. The file keeps the fixture's name so its format can be detected.
func WriteFixture(t *testing.T, name string) string {
	t.Helper()

	return WriteTempFile(t, t.TempDir(), name, string(LoadFixture(t, name)))
}

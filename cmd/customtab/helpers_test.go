package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/customtab/internal/app"
	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns its stdout and
// stderr. Flag variables are reset first because cobra keeps them between
// runs.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	settingsFile = ""
	verbose = false
	logJSON = false
	inspectFormat = string(app.OutputText)
	checkQuiet = false
	initOutput = ""
	initFormat = string(document.FormatYAML)
	initForce = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--settings", filepath.Join(t.TempDir(), "none.ini")}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSample writes the sample document into a temp dir and returns its path.
func writeSample(t *testing.T, format document.Format) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "intent"+format.Extension())
	_, _, err := executeCommand(t, "init", "--output", path, "--format", string(format))
	require.NoError(t, err)
	return path
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"inspect": false, "check": false, "init": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "%s should be a subcommand of root", name)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"settings", "verbose", "log-json"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestFormatError(t *testing.T) {
	ue := document.NewDocumentNotFoundError("intent.yaml").WithUnderlying(errors.New("stat failed"))

	verbose = false
	msg := formatError(ue)
	assert.Contains(t, msg, "intent document not found")
	assert.Contains(t, msg, "(at intent.yaml)")
	assert.Contains(t, msg, "Suggestion: Run 'customtab init'")
	assert.NotContains(t, msg, "stat failed")

	verbose = true
	defer func() { verbose = false }()
	assert.Contains(t, formatError(ue), "Technical details: stat failed")

	assert.Equal(t, "plain", formatError(errors.New("plain")))
}

func TestPrintErrorTo(t *testing.T) {
	var buf bytes.Buffer
	printErrorTo(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestSettingsFileIsApplied(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.ini")
	require.NoError(t, os.WriteFile(settings, []byte("[log]\nlevel = debug\n"), 0o600))

	path := writeSample(t, document.FormatYAML)

	// executeCommand always prepends a settings flag; the later one wins.
	_, stderr, err := executeCommand(t, "--settings", settings, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[INFO] inspected intent document")
}

func TestInvalidSettings(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(settings, []byte("[parser]\ndensity = -1\n"), 0o600))

	path := writeSample(t, document.FormatYAML)

	_, _, err := executeCommand(t, "--settings", settings, "inspect", path)
	require.Error(t, err)
	assert.True(t, document.IsUserError(err, document.ErrCodeSettingsInvalid))
}

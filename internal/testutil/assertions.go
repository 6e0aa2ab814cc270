package testutil

import (
	"os"
	"testing"

	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFileExists asserts that a file exists at the given path.
func AssertFileExists(t testing.TB, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		assert.Fail(t, "file does not exist", "expected file to exist: %s", path)
		return
	}
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "expected file but got directory: %s", path)
}

// AssertFileContains asserts that a file contains the expected substring.
func AssertFileContains(t testing.TB, path, expected string, msgAndArgs ...interface{}) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file: %s", path)

	assert.Contains(t, string(content), expected, msgAndArgs...)
}

// AssertUserError asserts that err carries a UserError with code and a
// suggestion for the user.
func AssertUserError(t testing.TB, err error, code string) {
	t.Helper()

	require.Error(t, err)
	ue := document.GetUserError(err)
	require.NotNil(t, ue, "expected a UserError, got %T: %v", err, err)
	assert.Equal(t, code, ue.Code, "unexpected error code: %v", err)
	assert.NotEmpty(t, ue.Suggestion, "user errors should suggest a fix")
}

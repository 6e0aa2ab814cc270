package mocks

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystem_ReadWrite(t *testing.T) {
	t.Parallel()

	fs := NewFileSystem()
	fs.AddFile("/work/intent.yaml", "extras: {}")

	content, err := fs.ReadFile("/work/intent.yaml")
	require.NoError(t, err)
	assert.Equal(t, "extras: {}", string(content))

	require.NoError(t, fs.WriteFile("/work/out.json", []byte("{}"), 0o600))
	assert.Equal(t, os.FileMode(0o600), fs.Perm("/work/out.json"))
	assert.Equal(t, []string{"/work/intent.yaml", "/work/out.json"}, fs.Files())
}

func TestFileSystem_ReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewFileSystem().ReadFile("/nonexistent")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSystem_FailWrites(t *testing.T) {
	t.Parallel()

	fs := NewFileSystem()
	boom := errors.New("disk full")
	fs.FailWrites(boom)

	err := fs.WriteFile("/out.yaml", []byte("x"), 0o644)
	assert.ErrorIs(t, err, boom)
	assert.False(t, fs.Exists("/out.yaml"))
}

func TestFileSystem_Dirs(t *testing.T) {
	t.Parallel()

	fs := NewFileSystem()
	require.NoError(t, fs.MkdirAll("/home/user/.config/customtab", 0o755))
	assert.True(t, fs.Exists("/home/user/.config/customtab"))
}

func TestFileSystem_Concurrent(t *testing.T) {
	t.Parallel()

	fs := NewFileSystem()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = fs.WriteFile("/shared", []byte("data"), 0o644)
			_, _ = fs.ReadFile("/shared")
		}()
	}
	wg.Wait()
	assert.True(t, fs.Exists("/shared"))
}

package app

import (
	"testing"

	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/felixgeelhaar/customtab/internal/ports"
	"github.com/felixgeelhaar/customtab/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(mocks.NewFileSystem(), "/nope/settings.ini")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	settings, err = LoadSettings(mocks.NewFileSystem(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Settings
	}{
		{
			name:    "empty file",
			content: "",
			want:    DefaultSettings(),
		},
		{
			name:    "all keys",
			content: "[parser]\ndensity = 2.5\n\n[log]\nlevel = debug\njson = true\n",
			want:    Settings{Density: 2.5, LogLevel: ports.LevelDebug, LogJSON: true},
		},
		{
			name:    "partial",
			content: "[log]\nlevel = warning\n",
			want:    Settings{Density: 1, LogLevel: ports.LevelWarn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := mocks.NewFileSystem()
			fs.AddFile("/settings.ini", tt.content)

			got, err := LoadSettings(fs, "/settings.ini")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "density not a number", content: "[parser]\ndensity = high\n"},
		{name: "density not positive", content: "[parser]\ndensity = 0\n"},
		{name: "unknown level", content: "[log]\nlevel = loud\n"},
		{name: "json not a bool", content: "[log]\njson = maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := mocks.NewFileSystem()
			fs.AddFile("/settings.ini", tt.content)

			_, err := LoadSettings(fs, "/settings.ini")
			require.Error(t, err)

			ue := document.GetUserError(err)
			require.NotNil(t, ue)
			assert.Equal(t, document.ErrCodeSettingsInvalid, ue.Code)
			assert.Equal(t, "/settings.ini", ue.Context)
		})
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Setenv(SettingsEnv, "/etc/customtab.ini")
	assert.Equal(t, "/etc/customtab.ini", DefaultSettingsPath())

	t.Setenv(SettingsEnv, "")
	assert.Contains(t, DefaultSettingsPath(), "customtab/settings.ini")
}
